package http

import (
	"central-gpt/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin user routes on rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users", mw.Auth(), mw.AdminOnly())
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.DELETE("/:id", h.Delete)
	}
}
