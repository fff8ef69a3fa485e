package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/testimonial"
	"central-gpt/pkg/log"
)

type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc testimonial.UseCase
}

func New(l log.Logger, uc testimonial.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
