package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"central-gpt/internal/user"
	repo "central-gpt/internal/user/repository"
)

// Create registers a user with a freshly generated access key.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return user.CreateUserOutput{}, user.ErrUsernameRequired
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Username: username})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	if existing.ID != "" {
		return user.CreateUserOutput{}, user.ErrDuplicateUsername
	}

	key, err := uc.uniqueKey(ctx)
	if err != nil {
		return user.CreateUserOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:       uuid.NewString(),
		Username: username,
		Key:      key,
		AIName:   coalesce(input.AIName, user.DefaultAIName),
		DevName:  coalesce(input.DevName, user.DefaultDevName),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateUserOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: user %s created", u.Username)
	return user.CreateUserOutput{User: u}, nil
}

func (uc *implUseCase) uniqueKey(ctx context.Context) (string, error) {
	var key string
	for i := 0; i < maxKeyAttempts; i++ {
		key = uc.newKey()
		existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Key: key})
		if err != nil {
			uc.l.Errorf(ctx, "uc.uniqueKey GetOneUser: %v", err)
			return "", err
		}
		if existing.ID == "" {
			return key, nil
		}
		uc.l.Warnf(ctx, "uc.uniqueKey: key collision on attempt %d", i+1)
	}
	return "", repo.ErrFailedToInsert
}
