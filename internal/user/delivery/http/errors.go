package http

import (
	"net/http"

	"central-gpt/internal/user"
	pkgErrors "central-gpt/pkg/errors"
)

var (
	errUserNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	errDuplicateUsername = pkgErrors.NewHTTPError(http.StatusConflict, "username already exists")
	errUsernameRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "username is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return errUserNotFound
	case user.ErrDuplicateUsername:
		return errDuplicateUsername
	case user.ErrUsernameRequired:
		return errUsernameRequired
	default:
		return pkgErrors.ErrInternalServerError
	}
}
