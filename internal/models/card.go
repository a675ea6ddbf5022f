package models

import (
	"time"

	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

var _ position.Movable[types.ListID] = (*Card)(nil)

// Card is an item on a list. Cards of one list share a dense, zero-based
// position range; a card moves between lists by changing ListID.
type Card struct {
	ID          types.CardID `json:"id"`
	ListID      types.ListID `json:"list_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Position    int          `json:"position"`
	Priority    Priority     `json:"priority,omitempty"`
	Completed   bool         `json:"completed"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Labels      []*Label     `json:"labels,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (c *Card) GetID() string { return string(c.ID) }
func (c *Card) GetContainer() types.ListID { return c.ListID }
func (c *Card) GetPosition() int { return c.Position }
func (c *Card) SetPosition(pos int) { c.Position = pos }
func (c *Card) SetContainer(key types.ListID) { c.ListID = key }
