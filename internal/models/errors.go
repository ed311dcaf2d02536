package models

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by repositories on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate")
)
