package repository

import (
	"context"

	"central-gpt/internal/testimonial"
)

type Repository interface {
	CreateTestimonial(ctx context.Context, opt CreateTestimonialOptions) (testimonial.Testimonial, error)
	ListTestimonials(ctx context.Context, opt ListTestimonialsOptions) ([]testimonial.Testimonial, error)
	// DeleteTestimonial reports whether a row was removed.
	DeleteTestimonial(ctx context.Context, id string) (bool, error)
}
