package reorder

import (
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// MovePolicy decides whether a card may move into another list. targetSize is
// the number of cards the target list holds before the move.
type MovePolicy interface {
	CheckMove(card *models.Card, targetListID types.ListID, targetSize int) error
}

// Target is a list the policy may be asked about, with the board it sits on.
type Target struct {
	List  *models.List
	Board *models.Board
}

// BoardRules is the standard policy: the target board must not be archived,
// the target list must sit on SourceBoard, and a list may hold at most
// MaxCardsPerList cards (0 disables the check). Targets must be loaded by the
// caller before the move.
type BoardRules struct {
	SourceBoard     types.BoardID
	Targets         map[types.ListID]Target
	MaxCardsPerList int
}

func (r BoardRules) CheckMove(card *models.Card, targetListID types.ListID, targetSize int) error {
	veto := func(err error) error {
		return &PolicyError{CardID: card.ID, TargetListID: targetListID, Err: err}
	}

	target, ok := r.Targets[targetListID]
	if !ok || target.List == nil || target.Board == nil {
		return veto(ErrUnknownList)
	}
	if target.Board.Archived {
		return veto(ErrArchivedBoard)
	}
	if target.List.BoardID != r.SourceBoard {
		return veto(ErrCrossBoardMove)
	}
	if r.MaxCardsPerList > 0 && targetSize >= r.MaxCardsPerList {
		return veto(ErrListFull)
	}
	return nil
}
