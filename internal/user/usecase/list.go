package usecase

import (
	"context"

	"central-gpt/internal/user"
	repo "central-gpt/internal/user/repository"
)

// List returns users newest first.
func (uc *implUseCase) List(ctx context.Context, input user.ListUsersInput) (user.ListUsersOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	users, total, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListUsersOutput{}, err
	}

	return user.ListUsersOutput{
		Users:  users,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}
