package core

import "errors"

var (
	// ErrNotFound is returned by repositories when the addressed row
	// does not exist or was soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint is violated,
	// e.g. registering an existing username or email.
	ErrDuplicate = errors.New("already exists")
)
