package store

import "errors"

// Sentinel errors returned by Table operations. The database facade wraps
// them with %w, so callers can still match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("store: invalid argument")
	ErrNotFound        = errors.New("store: key not found")
	ErrDuplicate       = errors.New("store: key already present")
)
