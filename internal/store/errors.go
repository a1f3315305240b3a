package store

import "errors"

// ErrNotFound is returned when a requested record does not exist or has
// been soft-deleted.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("record already exists")
