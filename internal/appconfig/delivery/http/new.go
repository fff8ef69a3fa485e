package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/appconfig"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/log"
)

// Handler is the public interface for the appconfig HTTP delivery layer.
type Handler interface {
	PublicFlags(c *gin.Context)
	AdminView(c *gin.Context)
	UpdateFlags(c *gin.Context)
	AddGeminiKey(c *gin.Context)
	RemoveGeminiKey(c *gin.Context)
	SetDeepseekKey(c *gin.Context)
	GeminiStatus(c *gin.Context)
}

// StatusProvider reports the live state of the key rotation client.
type StatusProvider interface {
	Status() keyrotation.Status
}

type handler struct {
	l      log.Logger
	uc     appconfig.UseCase
	status StatusProvider
}

// New creates a new HTTP handler for the appconfig domain.
func New(l log.Logger, uc appconfig.UseCase, status StatusProvider) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		status: status,
	}
}
