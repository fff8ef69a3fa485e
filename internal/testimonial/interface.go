package testimonial

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Testimonial, error)
	// List returns testimonials newest first.
	List(ctx context.Context, input ListInput) ([]Testimonial, error)
	Delete(ctx context.Context, id string) error
}
