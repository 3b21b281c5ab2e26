package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist
	// or is not owned by the requesting user.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
)
