package http

import (
	"central-gpt/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/testimonials", h.List)
}

func RegisterAdminRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	t := rg.Group("/testimonials", mw.Auth(), mw.AdminOnly())
	{
		t.POST("", h.Create)
		t.DELETE("/:id", h.Delete)
	}
}
