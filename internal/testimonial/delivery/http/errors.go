package http

import (
	"net/http"

	"central-gpt/internal/testimonial"
	pkgErrors "central-gpt/pkg/errors"
)

var (
	errTextRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errInvalidImage = pkgErrors.NewHTTPError(http.StatusBadRequest, "image must be an image data URL")
	errImageTooBig  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "image is too large")
	errNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "testimonial not found")
)

func (h *handler) mapError(err error) error {
	switch err {
	case testimonial.ErrTextRequired:
		return errTextRequired
	case testimonial.ErrInvalidImage:
		return errInvalidImage
	case testimonial.ErrImageTooBig:
		return errImageTooBig
	case testimonial.ErrNotFound:
		return errNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
