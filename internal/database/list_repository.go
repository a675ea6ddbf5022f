package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ListRepo handles all list-related database operations.
type ListRepo struct {
	c conn
}

const listColumns = `id, board_id, title, color, position, created_at, updated_at`

func scanList(s rowScanner) (*models.List, error) {
	l := &models.List{}
	if err := s.Scan(&l.ID, &l.BoardID, &l.Title, &l.Color, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateList inserts l at the position it already carries.
func (r *ListRepo) CreateList(ctx context.Context, l *models.List) error {
	l.CreatedAt = now()
	l.UpdatedAt = l.CreatedAt
	_, err := r.c.exec(ctx,
		`INSERT INTO lists (id, board_id, title, color, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.BoardID, l.Title, l.Color, l.Position, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting list %s: %w", l.ID, err)
	}
	return nil
}

// GetList retrieves a list by its ID.
func (r *ListRepo) GetList(ctx context.Context, id types.ListID) (*models.List, error) {
	l, err := scanList(r.c.queryRow(ctx, `SELECT `+listColumns+` FROM lists WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", id, notFound(err))
	}
	return l, nil
}

// ListsByBoard returns the lists of a board sorted by position. The result is
// the snapshot reorder operations expect.
func (r *ListRepo) ListsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.List, error) {
	rows, err := r.c.query(ctx,
		`SELECT `+listColumns+` FROM lists WHERE board_id = ? ORDER BY position, id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("querying lists for board: %w", err)
	}
	defer rows.Close()

	lists := []*models.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning list row: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating list rows: %w", err)
	}
	return lists, nil
}

// UpdateListDetails writes title and color. Position is only changed
// through ApplyListChanges.
func (r *ListRepo) UpdateListDetails(ctx context.Context, l *models.List) error {
	l.UpdatedAt = now()
	err := r.c.execOne(ctx,
		`UPDATE lists SET title = ?, color = ?, updated_at = ? WHERE id = ?`,
		l.Title, l.Color, l.UpdatedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating list %s: %w", l.ID, err)
	}
	return nil
}

// DeleteList removes a list; its cards cascade.
func (r *ListRepo) DeleteList(ctx context.Context, id types.ListID) error {
	if err := r.c.execOne(ctx, `DELETE FROM lists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting list %s: %w", id, err)
	}
	return nil
}

// LockList takes a row lock on the list for the rest of the transaction,
// serializing every writer that reorders its cards.
func (r *ListRepo) LockList(ctx context.Context, id types.ListID) error {
	if err := lockRow(ctx, r.c, "lists", string(id)); err != nil {
		return fmt.Errorf("locking list %s: %w", id, err)
	}
	return nil
}

// ApplyListChanges writes a list write set. A row that moved since the
// snapshot was read fails the whole batch with ErrStaleSnapshot; run it inside
// WithTx so nothing is left half applied.
func (r *ListRepo) ApplyListChanges(ctx context.Context, changes []position.Change[types.BoardID]) error {
	ts := now()
	for _, ch := range changes {
		err := r.c.execOne(ctx,
			`UPDATE lists SET position = ?, board_id = ?, updated_at = ?
			 WHERE id = ? AND position = ? AND board_id = ?`,
			ch.Position, ch.Container, ts, ch.ID, ch.PrevPosition, ch.PrevContainer,
		)
		if err != nil {
			return positionWriteError("list", ch.ID, err)
		}
	}
	return nil
}

func positionWriteError(kind, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrStaleSnapshot)
	}
	return fmt.Errorf("writing position of %s %s: %w", kind, id, err)
}
