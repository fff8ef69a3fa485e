package http

import (
	"errors"
	"net/http"

	"central-gpt/internal/chat"
	pkgErrors "central-gpt/pkg/errors"
)

var (
	errMaintenance   = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "System maintenance in progress. Please try again later.")
	errImageDisabled = pkgErrors.NewHTTPError(http.StatusForbidden, "Image upload is currently disabled")
	errEmptyMessage  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message or image is required")
	errInvalidImage  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Image must be a base64 encoded picture")
)

// mapError returns an *HTTPError for request problems and false for
// generation failures, which are rendered as diagnostics.
func (h *handler) mapError(err error) (*pkgErrors.HTTPError, bool) {
	switch {
	case errors.Is(err, chat.ErrMaintenance):
		return errMaintenance, true
	case errors.Is(err, chat.ErrImageDisabled):
		return errImageDisabled, true
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage, true
	case errors.Is(err, chat.ErrInvalidImage):
		return errInvalidImage, true
	default:
		return nil, false
	}
}

func diagnosticStatus(d chat.Diagnostic) int {
	switch d.Code {
	case chat.DiagnosticRateLimit:
		return http.StatusTooManyRequests
	case chat.DiagnosticKeyConfig, chat.DiagnosticNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
