package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert config")
	ErrFailedToGet    = errors.New("failed to get config")
	ErrFailedToUpdate = errors.New("failed to update config")
)
