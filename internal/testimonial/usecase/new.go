package usecase

import (
	"central-gpt/internal/testimonial/repository"
	"central-gpt/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}
