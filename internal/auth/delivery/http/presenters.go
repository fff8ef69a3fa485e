package http

import (
	"central-gpt/internal/auth"
	"central-gpt/pkg/response"
	"central-gpt/pkg/scope"
)

type loginReq struct {
	Key string `json:"key" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Key: r.Key}
}

type scopeResp struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	AIName   string `json:"ai_name,omitempty"`
	DevName  string `json:"dev_name,omitempty"`
}

func newScopeResp(sc scope.Scope) scopeResp {
	return scopeResp{
		UserID:   sc.UserID,
		Username: sc.Username,
		Role:     sc.Role,
		AIName:   sc.AIName,
		DevName:  sc.DevName,
	}
}

type loginResp struct {
	Token     string            `json:"token"`
	ExpiresAt response.DateTime `json:"expires_at"`
	User      scopeResp         `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		ExpiresAt: response.DateTime(out.ExpiresAt),
		User:      newScopeResp(out.Scope),
	}
}
