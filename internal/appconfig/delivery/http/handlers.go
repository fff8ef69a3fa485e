package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/pkg/response"
)

// PublicFlags godoc
// @Summary     Feature flags
// @Description Returns maintenance mode and feature toggles. Never includes keys.
// @Tags        Config
// @Produce     json
// @Success     200 {object} flagsResp
// @Router      /api/v1/config [GET]
func (h *handler) PublicFlags(c *gin.Context) {
	ctx := c.Request.Context()

	flags, err := h.uc.Flags(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Flags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newFlagsResp(flags))
}

// AdminView godoc
// @Summary     Admin configuration
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} adminResp
// @Router      /api/v1/admin/config [GET]
func (h *handler) AdminView(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.AdminView(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.AdminView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAdminResp(view))
}

// UpdateFlags godoc
// @Summary     Update feature flags
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateFlagsReq true "Flags to change"
// @Success     200 {object} flagsResp
// @Router      /api/v1/admin/config/flags [PATCH]
func (h *handler) UpdateFlags(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateFlagsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	flags, err := h.uc.UpdateFlags(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateFlags: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newFlagsResp(flags))
}

// AddGeminiKey godoc
// @Summary     Add a Gemini API key
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body addKeyReq true "API key"
// @Success     200 {object} adminResp
// @Failure     409 {object} response.Resp "Conflict - key already exists"
// @Router      /api/v1/admin/config/gemini-keys [POST]
func (h *handler) AddGeminiKey(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddKeyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.uc.AddGeminiKey(ctx, req.Key)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddGeminiKey: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAdminResp(view))
}

// RemoveGeminiKey godoc
// @Summary     Remove a Gemini API key by position
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       index path int true "Key index"
// @Success     200 {object} adminResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/config/gemini-keys/{index} [DELETE]
func (h *handler) RemoveGeminiKey(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processKeyIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.uc.RemoveGeminiKey(ctx, index)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveGeminiKey: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAdminResp(view))
}

// SetDeepseekKey godoc
// @Summary     Set or clear the DeepSeek fallback key
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body deepseekKeyReq true "API key, empty to clear"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/admin/config/deepseek-key [PUT]
func (h *handler) SetDeepseekKey(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeepseekKeyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetDeepseekKey(ctx, req.Key); err != nil {
		h.l.Errorf(ctx, "uc.SetDeepseekKey: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// GeminiStatus godoc
// @Summary     Key rotation status
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statusResp
// @Router      /api/v1/admin/config/gemini-status [GET]
func (h *handler) GeminiStatus(c *gin.Context) {
	response.OK(c, newStatusResp(h.status.Status()))
}
