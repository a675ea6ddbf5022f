package reorder

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/types"
)

// Move policy violations
var (
	ErrArchivedBoard  = errors.New("target list belongs to an archived board")
	ErrCrossBoardMove = errors.New("target list belongs to a different board")
	ErrListFull       = errors.New("target list has reached its card limit")
	ErrUnknownList    = errors.New("target list is unknown to the move policy")
)

// PolicyError reports which rule vetoed a card move.
type PolicyError struct {
	CardID       types.CardID
	TargetListID types.ListID
	Err          error
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("move of card %s to list %s rejected: %v", e.CardID, e.TargetListID, e.Err)
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}
