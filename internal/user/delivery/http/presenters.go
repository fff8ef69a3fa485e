package http

import (
	"central-gpt/internal/user"
	"central-gpt/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	AIName   string `json:"ai_name"  binding:"max=64"`
	DevName  string `json:"dev_name" binding:"max=64"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		Username: r.Username,
		AIName:   r.AIName,
		DevName:  r.DevName,
	}
}

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() user.ListUsersInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return user.ListUsersInput{Limit: limit, Offset: r.Offset}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Key       string            `json:"key"`
	AIName    string            `json:"ai_name"`
	DevName   string            `json:"dev_name"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Key:       u.Key,
		AIName:    u.AIName,
		DevName:   u.DevName,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type createResp struct {
	User userResp `json:"user"`
}

func (h *handler) newCreateResp(out user.CreateUserOutput) createResp {
	return createResp{User: newUserResp(out.User)}
}

type listResp struct {
	Users  []userResp `json:"users"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out user.ListUsersOutput) listResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listResp{
		Users:  users,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
