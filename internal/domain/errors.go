package domain

import "errors"

var (
	// ErrNotFound indicates the requested record was never written or
	// has been deleted.
	ErrNotFound = errors.New("not found")
)
