package appconfig

import "errors"

var (
	ErrKeyRequired   = errors.New("api key is required")
	ErrKeyExists     = errors.New("api key already exists")
	ErrKeyIndexRange = errors.New("api key index out of range")
	ErrKeyPoolReload = errors.New("key pool reload failed")
)
