package database

import "errors"

// Common storage-level errors. Handlers translate these to HTTP statuses;
// everything else surfaces as an opaque server error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrInvalidParent = errors.New("task cannot be moved under its own subtree")
)
