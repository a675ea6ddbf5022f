package database

import "errors"

var (
	// ErrNotFound is returned when a row lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrStaleSnapshot is returned when a position write finds the row no
	// longer holds the position or container it was read with. The caller
	// should reload its snapshot and recompute.
	ErrStaleSnapshot = errors.New("stale position snapshot")

	// ErrUnknownDriver is returned by Open for drivers other than sqlite and pgx.
	ErrUnknownDriver = errors.New("unknown database driver")
)
