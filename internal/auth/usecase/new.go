package usecase

import (
	"central-gpt/internal/user"
	"central-gpt/pkg/log"
	"central-gpt/pkg/scope"
)

type implUseCase struct {
	l          log.Logger
	userUC     user.UseCase
	jwtManager scope.Manager
	adminKey   string
}

// New creates the auth UseCase. An empty adminKey disables admin login.
func New(l log.Logger, userUC user.UseCase, jwtManager scope.Manager, adminKey string) *implUseCase {
	return &implUseCase{
		l:          l,
		userUC:     userUC,
		jwtManager: jwtManager,
		adminKey:   adminKey,
	}
}
