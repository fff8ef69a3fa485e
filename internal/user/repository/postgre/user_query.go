package postgre

import (
	"fmt"
	"strings"

	repo "central-gpt/internal/user/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Username != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(username) = LOWER($%d)", idx))
		args = append(args, opt.Username)
		idx++
	}
	if opt.Key != "" {
		conditions = append(conditions, fmt.Sprintf("key = $%d", idx))
		args = append(args, opt.Key)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the ORDER + LIMIT + OFFSET clause for ListUsers.
func (r *implRepository) buildListQuery(opt repo.ListUsersOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
