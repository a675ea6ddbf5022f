package types

import "github.com/google/uuid"

// ID types give each string identifier a domain meaning so a ListID can
// never be passed where a CardID is expected.

// BoardID identifies a board. It is the container key for lists.
type BoardID string

// ListID identifies a list on a board. It is the container key for cards.
type ListID string

// CardID identifies a card.
type CardID string

// LabelID identifies a board-scoped label.
type LabelID string

// UserID identifies the owner of a board.
type UserID string

// NewBoardID returns a fresh random board ID.
func NewBoardID() BoardID {
	return BoardID(uuid.NewString())
}

// NewListID returns a fresh random list ID.
func NewListID() ListID {
	return ListID(uuid.NewString())
}

// NewCardID returns a fresh random card ID.
func NewCardID() CardID {
	return CardID(uuid.NewString())
}

// NewLabelID returns a fresh random label ID.
func NewLabelID() LabelID {
	return LabelID(uuid.NewString())
}

func (id BoardID) String() string { return string(id) }
func (id ListID) String() string { return string(id) }
func (id CardID) String() string { return string(id) }
func (id LabelID) String() string { return string(id) }
func (id UserID) String() string { return string(id) }
