package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"central-gpt/internal/testimonial"
	repo "central-gpt/internal/testimonial/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input testimonial.CreateInput) (testimonial.Testimonial, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return testimonial.Testimonial{}, testimonial.ErrTextRequired
	}

	var image string
	if strings.TrimSpace(input.Image) != "" {
		var err error
		if image, err = validateImage(input.Image); err != nil {
			return testimonial.Testimonial{}, err
		}
	}

	t, err := uc.repo.CreateTestimonial(ctx, repo.CreateTestimonialOptions{
		ID:    uuid.NewString(),
		Text:  text,
		Image: image,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTestimonial: %v", err)
		return testimonial.Testimonial{}, err
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context, input testimonial.ListInput) ([]testimonial.Testimonial, error) {
	items, err := uc.repo.ListTestimonials(ctx, repo.ListTestimonialsOptions{Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTestimonials: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteTestimonial(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTestimonial: %v", err)
		return err
	}
	if !deleted {
		return testimonial.ErrNotFound
	}
	return nil
}
