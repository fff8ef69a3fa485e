package postgre

import (
	repo "central-gpt/internal/testimonial/repository"
)

func buildListQuery(opt repo.ListTestimonialsOptions) (string, []any) {
	query := "SELECT " + testimonialColumns + " FROM testimonials ORDER BY created_at DESC"
	if opt.Limit > 0 {
		return query + " LIMIT $1", []any{opt.Limit}
	}
	return query, nil
}
