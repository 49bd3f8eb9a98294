package activities

import "errors"

var (
	// ErrNotFound is returned both when a record does not exist and when it belongs
	// to another owner, so ids of other owners cannot be probed.
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
