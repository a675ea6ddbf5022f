package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	c conn
}

const boardColumns = `id, owner_id, title, slug, description, archived, starred, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBoard(s rowScanner) (*models.Board, error) {
	b := &models.Board{}
	err := s.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Slug, &b.Description,
		&b.Archived, &b.Starred, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBoard inserts b, stamping its timestamps.
func (r *BoardRepo) CreateBoard(ctx context.Context, b *models.Board) error {
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt
	_, err := r.c.exec(ctx,
		`INSERT INTO boards (id, owner_id, title, slug, description, archived, starred, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.OwnerID, b.Title, b.Slug, b.Description, b.Archived, b.Starred, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting board %s: %w", b.ID, err)
	}
	return nil
}

// GetBoard retrieves a board by its ID.
func (r *BoardRepo) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	b, err := scanBoard(r.c.queryRow(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", id, notFound(err))
	}
	return b, nil
}

// GetBoardBySlug retrieves one of owner's boards by slug.
func (r *BoardRepo) GetBoardBySlug(ctx context.Context, owner types.UserID, slug string) (*models.Board, error) {
	b, err := scanBoard(r.c.queryRow(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE owner_id = ? AND slug = ?`, owner, slug))
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", slug, notFound(err))
	}
	return b, nil
}

// SlugTaken reports whether owner already has a board with slug.
func (r *BoardRepo) SlugTaken(ctx context.Context, owner types.UserID, slug string) (bool, error) {
	var count int
	err := r.c.queryRow(ctx,
		`SELECT COUNT(*) FROM boards WHERE owner_id = ? AND slug = ?`, owner, slug).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListBoards returns the boards userID owns or is a member of, starred
// first, then oldest first.
func (r *BoardRepo) ListBoards(ctx context.Context, userID types.UserID, includeArchived bool) ([]*models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards
		WHERE (owner_id = ? OR id IN (SELECT board_id FROM board_members WHERE user_id = ?))`
	if !includeArchived {
		query += ` AND archived = FALSE`
	}
	query += ` ORDER BY starred DESC, created_at, id`

	rows, err := r.c.query(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

// UpdateBoard writes every mutable board field.
func (r *BoardRepo) UpdateBoard(ctx context.Context, b *models.Board) error {
	b.UpdatedAt = now()
	err := r.c.execOne(ctx,
		`UPDATE boards SET title = ?, slug = ?, description = ?, archived = ?, starred = ?, updated_at = ?
		 WHERE id = ?`,
		b.Title, b.Slug, b.Description, b.Archived, b.Starred, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating board %s: %w", b.ID, err)
	}
	return nil
}

// DeleteBoard removes a board; lists, cards and labels cascade.
func (r *BoardRepo) DeleteBoard(ctx context.Context, id types.BoardID) error {
	if err := r.c.execOne(ctx, `DELETE FROM boards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting board %s: %w", id, err)
	}
	return nil
}

// LockBoard takes a row lock on the board for the rest of the transaction,
// serializing every writer that reorders its lists.
func (r *BoardRepo) LockBoard(ctx context.Context, id types.BoardID) error {
	if err := lockRow(ctx, r.c, "boards", string(id)); err != nil {
		return fmt.Errorf("locking board %s: %w", id, err)
	}
	return nil
}

// lockRow uses SELECT ... FOR UPDATE on PostgreSQL. SQLite has no row locks,
// so the version bump there takes the database write lock instead.
func lockRow(ctx context.Context, c conn, table, id string) error {
	if c.dialect == DialectPostgres {
		var got string
		err := c.queryRow(ctx, `SELECT id FROM `+table+` WHERE id = ? FOR UPDATE`, id).Scan(&got)
		return notFound(err)
	}
	return c.execOne(ctx, `UPDATE `+table+` SET version = version + 1 WHERE id = ?`, id)
}
