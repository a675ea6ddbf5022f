package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	c conn
}

const cardColumns = `id, list_id, title, description, position, priority, completed, due_date, created_at, updated_at`

func scanCard(s rowScanner) (*models.Card, error) {
	c := &models.Card{}
	var due sql.NullTime
	err := s.Scan(&c.ID, &c.ListID, &c.Title, &c.Description, &c.Position,
		&c.Priority, &c.Completed, &due, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.DueDate = nullTimeToPtr(due)
	return c, nil
}

// CreateCard inserts c at the position it already carries.
func (r *CardRepo) CreateCard(ctx context.Context, c *models.Card) error {
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	_, err := r.c.exec(ctx,
		`INSERT INTO cards (id, list_id, title, description, position, priority, completed, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ListID, c.Title, c.Description, c.Position, c.Priority, c.Completed,
		ptrToNullTime(c.DueDate), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting card %s: %w", c.ID, err)
	}
	return nil
}

// GetCard retrieves a card by its ID, without labels.
func (r *CardRepo) GetCard(ctx context.Context, id types.CardID) (*models.Card, error) {
	c, err := scanCard(r.c.queryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", id, notFound(err))
	}
	return c, nil
}

// CardsByList returns the cards of a list sorted by position.
func (r *CardRepo) CardsByList(ctx context.Context, listID types.ListID) ([]*models.Card, error) {
	rows, err := r.c.query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE list_id = ? ORDER BY position, id`, listID)
	if err != nil {
		return nil, fmt.Errorf("querying cards for list: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return cards, nil
}

// UpdateCardDetails writes the non-positional card fields.
func (r *CardRepo) UpdateCardDetails(ctx context.Context, c *models.Card) error {
	c.UpdatedAt = now()
	err := r.c.execOne(ctx,
		`UPDATE cards SET title = ?, description = ?, priority = ?, completed = ?, due_date = ?, updated_at = ?
		 WHERE id = ?`,
		c.Title, c.Description, c.Priority, c.Completed, ptrToNullTime(c.DueDate), c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating card %s: %w", c.ID, err)
	}
	return nil
}

// DeleteCard removes a card; its label links cascade.
func (r *CardRepo) DeleteCard(ctx context.Context, id types.CardID) error {
	if err := r.c.execOne(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting card %s: %w", id, err)
	}
	return nil
}

// ApplyCardChanges writes a card write set, including cross-list moves.
// Semantics match ApplyListChanges.
func (r *CardRepo) ApplyCardChanges(ctx context.Context, changes []position.Change[types.ListID]) error {
	ts := now()
	for _, ch := range changes {
		err := r.c.execOne(ctx,
			`UPDATE cards SET position = ?, list_id = ?, updated_at = ?
			 WHERE id = ? AND position = ? AND list_id = ?`,
			ch.Position, ch.Container, ts, ch.ID, ch.PrevPosition, ch.PrevContainer,
		)
		if err != nil {
			return positionWriteError("card", ch.ID, err)
		}
		if ch.Moved() {
			slog.Debug("card changed list", "card_id", ch.ID, "from", ch.PrevContainer, "to", ch.Container)
		}
	}
	return nil
}
