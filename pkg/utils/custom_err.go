package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidMode        = errors.New("invalid travel mode")
	ErrInvalidEvent       = errors.New("invalid context event")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrPOINotFound        = errors.New("poi not found")
	ErrDatabaseError      = errors.New("database error")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
