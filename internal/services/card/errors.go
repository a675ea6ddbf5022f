package card

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/reorder"
	"github.com/thenoetrevino/boardly/internal/services"
)

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle         = fmt.Errorf("%w: title cannot be empty", services.ErrInvalidInput)
	ErrTitleTooLong       = fmt.Errorf("%w: title is too long", services.ErrInvalidInput)
	ErrDescriptionTooLong = fmt.Errorf("%w: description is too long", services.ErrInvalidInput)
	ErrInvalidCardID      = fmt.Errorf("%w: invalid card ID", services.ErrInvalidInput)
	ErrInvalidListID      = fmt.Errorf("%w: invalid list ID", services.ErrInvalidInput)
	ErrInvalidPriority    = fmt.Errorf("%w: invalid priority", services.ErrInvalidInput)
	ErrNothingToUpdate    = fmt.Errorf("%w: nothing to update", services.ErrInvalidInput)

	// Business logic errors
	ErrListFull        = reorder.ErrListFull
	ErrCrossBoardMove  = reorder.ErrCrossBoardMove
	ErrLabelNotOnBoard = errors.New("label belongs to a different board")
)
