package http

import (
	"github.com/gin-gonic/gin"

	"central-gpt/internal/auth"
	"central-gpt/pkg/log"
)

type Handler interface {
	Login(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
