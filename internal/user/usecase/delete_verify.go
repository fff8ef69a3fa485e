package usecase

import (
	"context"
	"strings"

	"central-gpt/internal/user"
	repo "central-gpt/internal/user/repository"
)

// Delete removes a user by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == "" {
		return user.ErrUserNotFound
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}

// VerifyKey looks up the user owning key. Surrounding whitespace is ignored.
func (uc *implUseCase) VerifyKey(ctx context.Context, key string) (user.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return user.User{}, user.ErrInvalidKey
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Key: key})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyKey GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrInvalidKey
	}
	return u, nil
}
