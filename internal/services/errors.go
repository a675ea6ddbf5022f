package services

import "errors"

// Errors shared by every service. Per-service validation errors wrap
// ErrInvalidInput so callers can classify them without knowing each one.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAccessDenied  = errors.New("your role on the board does not allow this")
	ErrBoardArchived = errors.New("board is archived")
)
