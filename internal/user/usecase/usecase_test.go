package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"central-gpt/internal/user"
	repo "central-gpt/internal/user/repository"
	"central-gpt/pkg/log"
)

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	users   []user.User
	failGet bool
}

func (m *mockRepo) CreateUser(_ context.Context, opt repo.CreateUserOptions) (user.User, error) {
	u := user.User{
		ID:        opt.ID,
		Username:  opt.Username,
		Key:       opt.Key,
		AIName:    opt.AIName,
		DevName:   opt.DevName,
		CreatedAt: time.Now(),
	}
	m.users = append(m.users, u)
	return u, nil
}

func (m *mockRepo) GetOneUser(_ context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	if m.failGet {
		return user.User{}, repo.ErrFailedToGet
	}
	for _, u := range m.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Username != "" && u.Username != opt.Username {
			continue
		}
		if opt.Key != "" && u.Key != opt.Key {
			continue
		}
		return u, nil
	}
	return user.User{}, nil
}

func (m *mockRepo) ListUsers(_ context.Context, opt repo.ListUsersOptions) ([]user.User, int, error) {
	out := make([]user.User, 0, len(m.users))
	for i := len(m.users) - 1; i >= 0; i-- {
		out = append(out, m.users[i])
	}
	return out, len(m.users), nil
}

func (m *mockRepo) DeleteUser(_ context.Context, id string) error {
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestUseCase(r *mockRepo) *implUseCase {
	return New(r, log.NewNop())
}

func TestGenerateKey(t *testing.T) {
	pattern := regexp.MustCompile(`^CGPT-[0-9A-F]{4}-[0-9A-F]{4}$`)
	for i := 0; i < 20; i++ {
		key := generateKey()
		assert.Regexp(t, pattern, key)
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{})

		out, err := uc.Create(ctx, user.CreateUserInput{Username: "  alice "})
		require.NoError(t, err)
		assert.Equal(t, "alice", out.User.Username)
		assert.Equal(t, user.DefaultAIName, out.User.AIName)
		assert.Equal(t, user.DefaultDevName, out.User.DevName)
		assert.NotEmpty(t, out.User.ID)
		assert.Regexp(t, `^CGPT-`, out.User.Key)
	})

	t.Run("custom names", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{})

		out, err := uc.Create(ctx, user.CreateUserInput{Username: "bob", AIName: "Nova", DevName: "Zed"})
		require.NoError(t, err)
		assert.Equal(t, "Nova", out.User.AIName)
		assert.Equal(t, "Zed", out.User.DevName)
	})

	t.Run("username required", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{})
		_, err := uc.Create(ctx, user.CreateUserInput{Username: "   "})
		assert.ErrorIs(t, err, user.ErrUsernameRequired)
	})

	t.Run("duplicate", func(t *testing.T) {
		r := &mockRepo{users: []user.User{{ID: "1", Username: "alice"}}}
		_, err := newTestUseCase(r).Create(ctx, user.CreateUserInput{Username: "alice"})
		assert.ErrorIs(t, err, user.ErrDuplicateUsername)
	})

	t.Run("key collision retried", func(t *testing.T) {
		r := &mockRepo{users: []user.User{{ID: "1", Username: "taken", Key: "CGPT-AAAA-AAAA"}}}
		uc := newTestUseCase(r)
		keys := []string{"CGPT-AAAA-AAAA", "CGPT-BBBB-BBBB"}
		uc.newKey = func() string {
			k := keys[0]
			keys = keys[1:]
			return k
		}

		out, err := uc.Create(ctx, user.CreateUserInput{Username: "carol"})
		require.NoError(t, err)
		assert.Equal(t, "CGPT-BBBB-BBBB", out.User.Key)
	})

	t.Run("repository failure", func(t *testing.T) {
		_, err := newTestUseCase(&mockRepo{failGet: true}).Create(ctx, user.CreateUserInput{Username: "dave"})
		assert.ErrorIs(t, err, repo.ErrFailedToGet)
	})
}

func TestList(t *testing.T) {
	r := &mockRepo{users: []user.User{{ID: "1", Username: "old"}, {ID: "2", Username: "new"}}}

	out, err := newTestUseCase(r).List(context.Background(), user.ListUsersInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, defaultPageSize, out.Limit)
	assert.Equal(t, "new", out.Users[0].Username)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := &mockRepo{users: []user.User{{ID: "1", Username: "alice"}}}
	uc := newTestUseCase(r)

	require.NoError(t, uc.Delete(ctx, "1"))
	assert.Empty(t, r.users)

	err := uc.Delete(ctx, "1")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}

func TestVerifyKey(t *testing.T) {
	ctx := context.Background()
	r := &mockRepo{users: []user.User{{ID: "1", Username: "alice", Key: "CGPT-1234-ABCD"}}}
	uc := newTestUseCase(r)

	u, err := uc.VerifyKey(ctx, " CGPT-1234-ABCD\n")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = uc.VerifyKey(ctx, "CGPT-0000-0000")
	assert.ErrorIs(t, err, user.ErrInvalidKey)

	_, err = uc.VerifyKey(ctx, "")
	assert.ErrorIs(t, err, user.ErrInvalidKey)
}
