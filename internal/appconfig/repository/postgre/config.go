package postgre

import (
	"context"
	"database/sql"
	"errors"

	"central-gpt/internal/appconfig"
	repo "central-gpt/internal/appconfig/repository"
)

const configColumns = `id, maintenance_mode, feature_voice, feature_image, gemini_keys, deepseek_key, updated_at`

func (r *implRepository) scanConfig(ctx context.Context, row *sql.Row) (appconfig.AppConfig, error) {
	var (
		cfg     appconfig.AppConfig
		rawKeys []byte
	)
	if err := row.Scan(&cfg.ID, &cfg.MaintenanceMode, &cfg.FeatureVoice, &cfg.FeatureImage, &rawKeys, &cfg.DeepseekKey, &cfg.UpdatedAt); err != nil {
		return appconfig.AppConfig{}, err
	}

	keys, err := decodeKeys(rawKeys)
	if err != nil {
		r.l.Warnf(ctx, "%s: unreadable gemini_keys, treating as empty: %v", r.dsn("scanConfig"), err)
	}
	cfg.GeminiKeys = keys
	return cfg, nil
}

// GetConfig returns the oldest config row, or a zero value when none exists.
func (r *implRepository) GetConfig(ctx context.Context) (appconfig.AppConfig, error) {
	query := `SELECT ` + configColumns + ` FROM app_config ORDER BY id LIMIT 1`

	cfg, err := r.scanConfig(ctx, r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return appconfig.AppConfig{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConfig"), err)
		return appconfig.AppConfig{}, repo.ErrFailedToGet
	}
	return cfg, nil
}

// CreateConfig inserts the config row.
func (r *implRepository) CreateConfig(ctx context.Context, opt repo.SaveConfigOptions) (appconfig.AppConfig, error) {
	keys, err := encodeKeys(opt.GeminiKeys)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateConfig"), err)
		return appconfig.AppConfig{}, repo.ErrFailedToInsert
	}

	query := `
		INSERT INTO app_config (maintenance_mode, feature_voice, feature_image, gemini_keys, deepseek_key, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, $5, NOW())
		RETURNING ` + configColumns

	cfg, err := r.scanConfig(ctx, r.db.QueryRowContext(ctx, query,
		opt.MaintenanceMode, opt.FeatureVoice, opt.FeatureImage, keys, opt.DeepseekKey))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConfig"), err)
		return appconfig.AppConfig{}, repo.ErrFailedToInsert
	}
	return cfg, nil
}

// UpdateConfig overwrites every field of the row with id.
func (r *implRepository) UpdateConfig(ctx context.Context, id int, opt repo.SaveConfigOptions) (appconfig.AppConfig, error) {
	keys, err := encodeKeys(opt.GeminiKeys)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("UpdateConfig"), err)
		return appconfig.AppConfig{}, repo.ErrFailedToUpdate
	}

	query := `
		UPDATE app_config
		SET maintenance_mode = $1, feature_voice = $2, feature_image = $3,
		    gemini_keys = $4::jsonb, deepseek_key = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + configColumns

	cfg, err := r.scanConfig(ctx, r.db.QueryRowContext(ctx, query,
		opt.MaintenanceMode, opt.FeatureVoice, opt.FeatureImage, keys, opt.DeepseekKey, id))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateConfig"), err)
		return appconfig.AppConfig{}, repo.ErrFailedToUpdate
	}
	return cfg, nil
}
