package postgre

import (
	"database/sql"
	"fmt"

	"central-gpt/internal/testimonial/repository"
	"central-gpt/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("testimonial/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("testimonial/repository/postgre.%s", method)
}
