package usecase

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"central-gpt/internal/testimonial"
)

// validateImage checks that raw is a base64 data URL whose content sniffs as
// an image, and returns it normalised to the detected type.
func validateImage(raw string) (string, error) {
	header, payload, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", testimonial.ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return "", testimonial.ErrInvalidImage
	}
	if len(data) > testimonial.MaxImageBytes {
		return "", testimonial.ErrImageTooBig
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", testimonial.ErrInvalidImage
	}
	return "data:" + detected.String() + ";base64," + payload, nil
}
