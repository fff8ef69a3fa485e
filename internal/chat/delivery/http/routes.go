package http

import (
	"central-gpt/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the chat endpoints. Sending is rate limited per caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ch := rg.Group("/chat", mw.Auth())
	{
		ch.POST("", mw.RateLimit(), h.Send)
		ch.GET("/history", h.History)
		ch.DELETE("/history", h.ClearHistory)
	}
}
