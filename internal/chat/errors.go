package chat

import "errors"

var (
	ErrMaintenance   = errors.New("system maintenance in progress")
	ErrImageDisabled = errors.New("image upload is disabled")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrInvalidImage  = errors.New("image must be a base64 encoded picture")
)
