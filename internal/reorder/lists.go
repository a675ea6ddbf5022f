package reorder

import (
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ListWriteSet is the batch of lists a list operation touched.
type ListWriteSet = position.WriteSet[types.BoardID, *models.List]

// Lists orders the lists of a board.
type Lists struct{}

// OnCreate returns the position a new list on boardID takes. No existing
// list moves.
func (Lists) OnCreate(boardID types.BoardID, siblings []*models.List) (int, error) {
	return onCreate(boardID, siblings)
}

// OnDelete returns the lists that slide down to fill the deleted list's slot.
func (Lists) OnDelete(deleted *models.List, siblings []*models.List) (*ListWriteSet, error) {
	return onDelete[types.BoardID](deleted, siblings)
}

// OnMove moves a list to newPosition on its board. newPosition must lie in
// [0, len(siblings)-1]. Moving to the current position yields an empty set.
func (Lists) OnMove(moved *models.List, siblings []*models.List, newPosition int) (*ListWriteSet, error) {
	return onMove[types.BoardID](moved, siblings, newPosition)
}
