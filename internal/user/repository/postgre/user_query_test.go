package postgre

import (
	"reflect"
	"testing"

	repo "central-gpt/internal/user/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneUserOptions
		wantMods string
		wantArgs []any
	}{
		{"empty", repo.GetOneUserOptions{}, "1=1", nil},
		{"by key", repo.GetOneUserOptions{Key: "CGPT-AAAA-BBBB"}, "key = $1", []any{"CGPT-AAAA-BBBB"}},
		{
			"id and username",
			repo.GetOneUserOptions{ID: "u1", Username: "alice"},
			"id = $1 AND LOWER(username) = LOWER($2)",
			[]any{"u1", "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildGetOneQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildListQuery(repo.ListUsersOptions{Limit: 20, Offset: 40})
	if mods != "ORDER BY created_at DESC LIMIT $1 OFFSET $2" {
		t.Errorf("unexpected mods %q", mods)
	}
	if !reflect.DeepEqual(args, []any{20, 40}) {
		t.Errorf("unexpected args %v", args)
	}

	mods, args = r.buildListQuery(repo.ListUsersOptions{})
	if mods != "ORDER BY created_at DESC" || len(args) != 0 {
		t.Errorf("unexpected unpaginated query %q %v", mods, args)
	}
}
