package events

import (
	"time"

	"github.com/thenoetrevino/boardly/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged   EventType = "board_changed"
	EventBoardDeleted   EventType = "board_deleted"
	EventListsChanged   EventType = "lists_changed"
	EventCardsChanged   EventType = "cards_changed"
	EventLabelChanged   EventType = "label_changed"
	EventMembersChanged EventType = "members_changed"
)

// Event is a change notification for one board. Subscribers reload the board
// rather than apply a diff.
type Event struct {
	Type       EventType     `json:"type"`
	BoardID    types.BoardID `json:"board_id"`
	Timestamp  time.Time     `json:"timestamp"`
	SequenceID int64         `json:"sequence_id"` // increasing per publisher
}
