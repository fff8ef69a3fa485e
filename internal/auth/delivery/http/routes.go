package http

import (
	"central-gpt/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/login", mw.RateLimit(), h.Login)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
