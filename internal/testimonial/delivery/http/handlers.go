package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/testimonial"
	"central-gpt/pkg/response"
)

// List godoc
// @Summary     Testimonials
// @Description Public testimonials, newest first.
// @Tags        Testimonials
// @Produce     json
// @Param       limit query int false "Max items (1-100)"
// @Success     200 {object} listResp
// @Router      /api/v1/testimonials [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.List(ctx, testimonial.ListInput{Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(items))
}

// Create godoc
// @Summary     Add a testimonial
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Testimonial"
// @Success     200 {object} itemResp
// @Router      /api/v1/admin/testimonials [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newItemResp(t))
}

// Delete godoc
// @Summary     Delete a testimonial
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Testimonial ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/admin/testimonials/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
