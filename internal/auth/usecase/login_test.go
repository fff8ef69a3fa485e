package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"central-gpt/internal/auth"
	"central-gpt/internal/user"
	"central-gpt/pkg/log"
	"central-gpt/pkg/scope"
)

type mockUserUC struct {
	user.UseCase
	users map[string]user.User
	err   error
}

func (m *mockUserUC) VerifyKey(_ context.Context, key string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[key]
	if !ok {
		return user.User{}, user.ErrInvalidKey
	}
	return u, nil
}

func newTestUseCase(t *testing.T, users map[string]user.User) (*implUseCase, scope.Manager) {
	t.Helper()
	jwtManager, err := scope.NewJWTManager("secret", time.Hour)
	require.NoError(t, err)
	return New(log.NewNop(), &mockUserUC{users: users}, jwtManager, "ADMIN-KEY"), jwtManager
}

func TestLogin_Admin(t *testing.T) {
	uc, jwtManager := newTestUseCase(t, nil)

	out, err := uc.Login(context.Background(), auth.LoginInput{Key: " ADMIN-KEY "})
	require.NoError(t, err)
	assert.True(t, out.Scope.IsAdmin())

	sc, err := jwtManager.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.AdminUserID, sc.UserID)
}

func TestLogin_User(t *testing.T) {
	users := map[string]user.User{
		"CGPT-AAAA-BBBB": {ID: "u1", Username: "alice", AIName: "Nova", DevName: "Zed"},
	}
	uc, jwtManager := newTestUseCase(t, users)

	out, err := uc.Login(context.Background(), auth.LoginInput{Key: "CGPT-AAAA-BBBB"})
	require.NoError(t, err)
	assert.Equal(t, scope.RoleUser, out.Scope.Role)

	sc, err := jwtManager.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", sc.Username)
	assert.Equal(t, "Nova", sc.AIName)
	assert.Equal(t, "Zed", sc.DevName)
}

func TestLogin_Rejects(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	_, err := uc.Login(context.Background(), auth.LoginInput{Key: "CGPT-NOPE-NOPE"})
	assert.ErrorIs(t, err, auth.ErrInvalidKey)

	_, err = uc.Login(context.Background(), auth.LoginInput{Key: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestLogin_NoAdminKeyConfigured(t *testing.T) {
	jwtManager, _ := scope.NewJWTManager("secret", time.Hour)
	uc := New(log.NewNop(), &mockUserUC{}, jwtManager, "")

	_, err := uc.Login(context.Background(), auth.LoginInput{Key: "anything"})
	assert.ErrorIs(t, err, auth.ErrInvalidKey)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	jwtManager, _ := scope.NewJWTManager("secret", time.Hour)
	boom := errors.New("db down")
	uc := New(log.NewNop(), &mockUserUC{err: boom}, jwtManager, "ADMIN-KEY")

	_, err := uc.Login(context.Background(), auth.LoginInput{Key: "CGPT-AAAA-BBBB"})
	assert.ErrorIs(t, err, boom)
}
