package repository

import (
	"context"

	"central-gpt/internal/appconfig"
)

// Repository persists the single AppConfig row.
type Repository interface {
	// GetConfig returns a zero-value AppConfig (ID == 0) when no row exists.
	GetConfig(ctx context.Context) (appconfig.AppConfig, error)
	CreateConfig(ctx context.Context, opt SaveConfigOptions) (appconfig.AppConfig, error)
	UpdateConfig(ctx context.Context, id int, opt SaveConfigOptions) (appconfig.AppConfig, error)
}
