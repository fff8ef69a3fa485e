package postgre

import (
	"database/sql"
	"fmt"

	"central-gpt/internal/appconfig/repository"
	"central-gpt/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the app configuration.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("appconfig/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("appconfig/repository/postgre.%s", method)
}
