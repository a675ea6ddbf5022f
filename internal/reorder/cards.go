package reorder

import (
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

// CardWriteSet is the batch of cards a card operation touched.
type CardWriteSet = position.WriteSet[types.ListID, *models.Card]

// Cards orders the cards of a list and moves cards between lists.
type Cards struct {
	// Policy may veto cross-list moves. Nil allows every move.
	Policy MovePolicy
}

// OnCreate returns the position a new card on listID takes.
func (Cards) OnCreate(listID types.ListID, siblings []*models.Card) (int, error) {
	return onCreate(listID, siblings)
}

// OnDelete returns the cards that slide down to fill the deleted card's slot.
func (Cards) OnDelete(deleted *models.Card, siblings []*models.Card) (*CardWriteSet, error) {
	return onDelete[types.ListID](deleted, siblings)
}

// OnMoveWithinList moves a card to newPosition inside its current list.
func (Cards) OnMoveWithinList(card *models.Card, siblings []*models.Card, newPosition int) (*CardWriteSet, error) {
	return onMove[types.ListID](card, siblings, newPosition)
}

// OnMoveAcrossLists relocates card from its list (source) to targetListID
// (target) at newPosition, which may equal len(target) to append. The
// returned set holds the shifted source cards, the shifted target cards and
// the card itself. A target equal to the card's own list is a plain
// within-list move.
func (c Cards) OnMoveAcrossLists(card *models.Card, source []*models.Card, targetListID types.ListID, target []*models.Card, newPosition int) (*CardWriteSet, error) {
	if card.ListID == targetListID {
		return c.OnMoveWithinList(card, source, newPosition)
	}

	if c.Policy != nil {
		if err := c.Policy.CheckMove(card, targetListID, len(target)); err != nil {
			return nil, err
		}
	}

	src, err := position.NewCollection(card.ListID, source)
	if err != nil {
		return nil, err
	}
	if !src.Replace(card) {
		return nil, &position.MismatchError{ItemID: card.GetID(), Expected: card.ListID}
	}

	dst, err := position.NewCollection(targetListID, target)
	if err != nil {
		return nil, err
	}
	if _, ok := dst.Find(card.GetID()); ok {
		return nil, &position.MismatchError{ItemID: card.GetID(), Expected: card.ListID, Actual: targetListID}
	}

	srcShifts, dstShifts, err := position.CrossMove[types.ListID](src.Items(), card.Position, dst.Items(), newPosition)
	if err != nil {
		return nil, err
	}

	ws := position.NewWriteSet[types.ListID, *models.Card]()
	ws.ApplyShifts(srcShifts)
	ws.ApplyShifts(dstShifts)
	ws.Record(card, card.Position, card.ListID)
	card.SetContainer(targetListID)
	card.SetPosition(newPosition)
	return ws, nil
}

// OnMoveToEnd appends card to targetListID. No target card moves.
func (c Cards) OnMoveToEnd(card *models.Card, source []*models.Card, targetListID types.ListID, target []*models.Card) (*CardWriteSet, error) {
	end := position.InsertPosition(target)
	if card.ListID == targetListID {
		end = len(source) - 1
	}
	return c.OnMoveAcrossLists(card, source, targetListID, target, end)
}
