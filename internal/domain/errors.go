package domain

import "errors"

var (
	// ErrNotFound is returned when a requested artist or release does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReadOnly is returned by content sources that cannot accept writes.
	ErrReadOnly = errors.New("content source is read-only")
)
