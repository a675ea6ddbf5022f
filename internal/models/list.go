package models

import (
	"time"

	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

var _ position.Item[types.BoardID] = (*List)(nil)

// List is a column on a board. Lists of one board share a dense, zero-based
// position range.
type List struct {
	ID        types.ListID  `json:"id"`
	BoardID   types.BoardID `json:"board_id"`
	Title     string        `json:"title"`
	Color     string        `json:"color"`
	Position  int           `json:"position"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (l *List) GetID() string { return string(l.ID) }
func (l *List) GetContainer() types.BoardID { return l.BoardID }
func (l *List) GetPosition() int { return l.Position }
func (l *List) SetPosition(pos int) { l.Position = pos }
