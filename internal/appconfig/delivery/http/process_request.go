package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "central-gpt/pkg/errors"
)

func (h *handler) processUpdateFlagsReq(c *gin.Context) (updateFlagsReq, error) {
	var req updateFlagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAddKeyReq(c *gin.Context) (addKeyReq, error) {
	var req addKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDeepseekKeyReq(c *gin.Context) (deepseekKeyReq, error) {
	var req deepseekKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processKeyIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, pkgErrors.ErrBadRequest
	}
	return index, nil
}
