package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/middleware"
	"central-gpt/pkg/response"
)

// Login godoc
// @Summary     Sign in with an access key
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Access key"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid key"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

// Me godoc
// @Summary     Current session
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} scopeResp
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newScopeResp(sc))
}
