package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// MemberRepo handles board membership rows.
type MemberRepo struct {
	c conn
}

const memberColumns = `board_id, user_id, role, created_at`

func scanMember(s rowScanner) (*models.Member, error) {
	m := &models.Member{}
	if err := s.Scan(&m.BoardID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

// AddMember inserts m, stamping CreatedAt.
func (r *MemberRepo) AddMember(ctx context.Context, m *models.Member) error {
	m.CreatedAt = now()
	_, err := r.c.exec(ctx,
		`INSERT INTO board_members (`+memberColumns+`) VALUES (?, ?, ?, ?)`,
		m.BoardID, m.UserID, m.Role, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("adding member %s to board %s: %w", m.UserID, m.BoardID, err)
	}
	return nil
}

// GetMember retrieves userID's membership of boardID.
func (r *MemberRepo) GetMember(ctx context.Context, boardID types.BoardID, userID types.UserID) (*models.Member, error) {
	m, err := scanMember(r.c.queryRow(ctx,
		`SELECT `+memberColumns+` FROM board_members WHERE board_id = ? AND user_id = ?`, boardID, userID))
	if err != nil {
		return nil, fmt.Errorf("member %s of board %s: %w", userID, boardID, notFound(err))
	}
	return m, nil
}

// MembersByBoard returns a board's members, oldest first.
func (r *MemberRepo) MembersByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Member, error) {
	rows, err := r.c.query(ctx,
		`SELECT `+memberColumns+` FROM board_members WHERE board_id = ? ORDER BY created_at, user_id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}
	return members, nil
}

// UpdateMemberRole changes a member's role.
func (r *MemberRepo) UpdateMemberRole(ctx context.Context, boardID types.BoardID, userID types.UserID, role models.Role) error {
	err := r.c.execOne(ctx,
		`UPDATE board_members SET role = ? WHERE board_id = ? AND user_id = ?`, role, boardID, userID)
	if err != nil {
		return fmt.Errorf("updating member %s of board %s: %w", userID, boardID, err)
	}
	return nil
}

// RemoveMember deletes a membership.
func (r *MemberRepo) RemoveMember(ctx context.Context, boardID types.BoardID, userID types.UserID) error {
	err := r.c.execOne(ctx, `DELETE FROM board_members WHERE board_id = ? AND user_id = ?`, boardID, userID)
	if err != nil {
		return fmt.Errorf("removing member %s from board %s: %w", userID, boardID, err)
	}
	return nil
}
