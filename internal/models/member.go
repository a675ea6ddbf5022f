package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/boardly/internal/types"
)

// Role is what a user may do on a board. The owner is not stored as a
// member; RoleOwner is reported for the user in Board.OwnerID.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// MemberRoles are the roles a member can be given.
var MemberRoles = []Role{RoleAdmin, RoleEditor, RoleViewer}

// ParseRole parses a member role, ignoring case. The owner role cannot be
// granted.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q (want admin, editor or viewer)", s)
}

// CanWrite reports whether the role may change lists, cards and labels.
func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleEditor
}

// CanAdmin reports whether the role may change board settings and members.
func (r Role) CanAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Member gives a user other than the owner access to a board.
type Member struct {
	BoardID   types.BoardID `json:"board_id"`
	UserID    types.UserID  `json:"user_id"`
	Role      Role          `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}
