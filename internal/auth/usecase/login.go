package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"central-gpt/internal/auth"
	"central-gpt/internal/user"
	"central-gpt/pkg/scope"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	key := strings.TrimSpace(input.Key)
	if key == "" {
		return auth.LoginOutput{}, auth.ErrInvalidKey
	}

	if uc.isAdminKey(key) {
		uc.l.Info(ctx, "uc.Login: admin session issued")
		return uc.issue(ctx, scope.Scope{
			UserID:   auth.AdminUserID,
			Username: auth.AdminUserID,
			Role:     scope.RoleAdmin,
		})
	}

	u, err := uc.userUC.VerifyKey(ctx, key)
	if err != nil {
		if errors.Is(err, user.ErrInvalidKey) {
			return auth.LoginOutput{}, auth.ErrInvalidKey
		}
		uc.l.Errorf(ctx, "uc.Login VerifyKey: %v", err)
		return auth.LoginOutput{}, err
	}

	return uc.issue(ctx, scope.Scope{
		UserID:   u.ID,
		Username: u.Username,
		Role:     scope.RoleUser,
		AIName:   u.AIName,
		DevName:  u.DevName,
	})
}

func (uc *implUseCase) isAdminKey(key string) bool {
	if uc.adminKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(uc.adminKey)) == 1
}

func (uc *implUseCase) issue(ctx context.Context, sc scope.Scope) (auth.LoginOutput, error) {
	token, exp, err := uc.jwtManager.Generate(sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue Generate: %v", err)
		return auth.LoginOutput{}, err
	}
	return auth.LoginOutput{Token: token, ExpiresAt: exp, Scope: sc}, nil
}
