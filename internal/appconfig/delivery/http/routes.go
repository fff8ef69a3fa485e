package http

import (
	"central-gpt/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes mounts the unauthenticated flag endpoint.
func RegisterPublicRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/config", h.PublicFlags)
}

// RegisterAdminRoutes mounts the admin configuration endpoints on rg.
func RegisterAdminRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cfg := rg.Group("/config", mw.Auth(), mw.AdminOnly())
	{
		cfg.GET("", h.AdminView)
		cfg.PATCH("/flags", h.UpdateFlags)
		cfg.POST("/gemini-keys", h.AddGeminiKey)
		cfg.DELETE("/gemini-keys/:index", h.RemoveGeminiKey)
		cfg.PUT("/deepseek-key", h.SetDeepseekKey)
		cfg.GET("/gemini-status", h.GeminiStatus)
	}
}
