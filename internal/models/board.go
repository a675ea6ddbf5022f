package models

import (
	"time"

	"github.com/thenoetrevino/boardly/internal/types"
)

// Board is the top-level container. Its lists are ordered by position.
type Board struct {
	ID          types.BoardID `json:"id"`
	OwnerID     types.UserID  `json:"owner_id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"` // URL-friendly form of Title, unique per owner
	Description string        `json:"description"`
	Archived    bool          `json:"archived"`
	Starred     bool          `json:"starred"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsActive reports whether lists and cards on the board may be changed.
func (b *Board) IsActive() bool {
	return !b.Archived
}

// IsOwner reports whether userID owns the board.
func (b *Board) IsOwner(userID types.UserID) bool {
	return b.OwnerID == userID
}
