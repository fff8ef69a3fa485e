package usecase

import (
	"central-gpt/internal/user/repository"
	"central-gpt/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	newKey func() string
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		l:      l,
		newKey: generateKey,
	}
}
