package testimonial

import "errors"

var (
	ErrTextRequired = errors.New("testimonial text is required")
	ErrInvalidImage = errors.New("testimonial image must be an image data URL")
	ErrImageTooBig  = errors.New("testimonial image is too large")
	ErrNotFound     = errors.New("testimonial not found")
)
