package repository

import "errors"

// Sentinel errors returned (wrapped) by every repository implementation.
// Callers classify with errors.Is.
var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("unique constraint violated")
	ErrUnavailable = errors.New("store unavailable")
)
