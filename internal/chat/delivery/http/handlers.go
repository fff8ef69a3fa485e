package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/chat"
	"central-gpt/internal/middleware"
	"central-gpt/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Sends one turn to the assistant. Generation failures return a diagnostic in data.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message and optional image"
// @Success     200 {object} sendResp
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     503 {object} response.Resp "Maintenance or key configuration"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		if httpErr, ok := h.mapError(err); ok {
			response.Error(c, httpErr)
			return
		}

		h.l.Errorf(ctx, "uc.Send: %v", err)
		d := chat.Diagnose(err)
		response.Fail(c, diagnosticStatus(d), d.Title, newDiagnosticResp(d))
		return
	}

	response.OK(c, newSendResp(out))
}

// History godoc
// @Summary     Chat history
// @Description Returns the caller's recent turns, newest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	entries, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newHistoryResp(entries))
}

// ClearHistory godoc
// @Summary     Clear chat history
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}
