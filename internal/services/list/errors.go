package list

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/services"
)

// List-related errors
var (
	// Validation errors
	ErrEmptyTitle     = fmt.Errorf("%w: title cannot be empty", services.ErrInvalidInput)
	ErrTitleTooLong   = fmt.Errorf("%w: title is too long", services.ErrInvalidInput)
	ErrInvalidColor   = fmt.Errorf("%w: color is not in the list palette", services.ErrInvalidInput)
	ErrInvalidListID  = fmt.Errorf("%w: invalid list ID", services.ErrInvalidInput)
	ErrInvalidBoardID = fmt.Errorf("%w: invalid board ID", services.ErrInvalidInput)

	// Business logic errors
	ErrListLimitReached = errors.New("board has reached its list limit")
)
