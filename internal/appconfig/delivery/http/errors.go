package http

import (
	"errors"
	"net/http"

	"central-gpt/internal/appconfig"
	pkgErrors "central-gpt/pkg/errors"
)

var (
	errKeyRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "api key is required")
	errKeyExists     = pkgErrors.NewHTTPError(http.StatusConflict, "api key already exists")
	errKeyIndexRange = pkgErrors.NewHTTPError(http.StatusNotFound, "api key not found")
	errKeyPool       = pkgErrors.NewHTTPError(http.StatusBadGateway, "saved, but the key pool could not be reloaded")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, appconfig.ErrKeyRequired):
		return errKeyRequired
	case errors.Is(err, appconfig.ErrKeyExists):
		return errKeyExists
	case errors.Is(err, appconfig.ErrKeyIndexRange):
		return errKeyIndexRange
	case errors.Is(err, appconfig.ErrKeyPoolReload):
		return errKeyPool
	default:
		return pkgErrors.ErrInternalServerError
	}
}
