package postgre

import (
	"context"

	"central-gpt/internal/testimonial"
	repo "central-gpt/internal/testimonial/repository"
)

const testimonialColumns = `id, text, COALESCE(image, ''), created_at`

func scanTestimonial(row interface{ Scan(...any) error }) (testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := row.Scan(&t.ID, &t.Text, &t.Image, &t.CreatedAt)
	return t, err
}

func (r *implRepository) CreateTestimonial(ctx context.Context, opt repo.CreateTestimonialOptions) (testimonial.Testimonial, error) {
	const query = `
		INSERT INTO testimonials (id, text, image, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW())
		RETURNING ` + testimonialColumns

	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query, opt.ID, opt.Text, opt.Image))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTestimonial"), err)
		return testimonial.Testimonial{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) ListTestimonials(ctx context.Context, opt repo.ListTestimonialsOptions) ([]testimonial.Testimonial, error) {
	query, args := buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTestimonials"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []testimonial.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTestimonials"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTestimonials"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTestimonial"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTestimonial"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
