package http

import (
	"net/http"

	"central-gpt/internal/auth"
	pkgErrors "central-gpt/pkg/errors"
)

var errInvalidKey = pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid access key")

func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidKey:
		return errInvalidKey
	default:
		return pkgErrors.ErrInternalServerError
	}
}
