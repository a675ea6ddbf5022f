package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// LabelRepo handles all label-related database operations.
type LabelRepo struct {
	c conn
}

func scanLabel(s rowScanner) (*models.Label, error) {
	l := &models.Label{}
	if err := s.Scan(&l.ID, &l.BoardID, &l.Name, &l.Color); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LabelRepo) scanLabels(ctx context.Context, query string, args ...any) ([]*models.Label, error) {
	rows, err := r.c.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning label row: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating label rows: %w", err)
	}
	return labels, nil
}

// CreateLabel inserts a board-scoped label.
func (r *LabelRepo) CreateLabel(ctx context.Context, l *models.Label) error {
	_, err := r.c.exec(ctx,
		`INSERT INTO labels (id, board_id, name, color) VALUES (?, ?, ?, ?)`,
		l.ID, l.BoardID, l.Name, l.Color,
	)
	if err != nil {
		return fmt.Errorf("inserting label %s: %w", l.ID, err)
	}
	return nil
}

// GetLabel retrieves a label by its ID.
func (r *LabelRepo) GetLabel(ctx context.Context, id types.LabelID) (*models.Label, error) {
	l, err := scanLabel(r.c.queryRow(ctx, `SELECT id, board_id, name, color FROM labels WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("label %s: %w", id, notFound(err))
	}
	return l, nil
}

// LabelsByBoard returns a board's labels ordered by name.
func (r *LabelRepo) LabelsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Label, error) {
	return r.scanLabels(ctx,
		`SELECT id, board_id, name, color FROM labels WHERE board_id = ? ORDER BY name, id`, boardID)
}

// LabelsForCard returns the labels attached to a card ordered by name.
func (r *LabelRepo) LabelsForCard(ctx context.Context, cardID types.CardID) ([]*models.Label, error) {
	return r.scanLabels(ctx,
		`SELECT l.id, l.board_id, l.name, l.color
		 FROM labels l
		 JOIN card_labels cl ON cl.label_id = l.id
		 WHERE cl.card_id = ?
		 ORDER BY l.name, l.id`, cardID)
}

// UpdateLabel writes name and color.
func (r *LabelRepo) UpdateLabel(ctx context.Context, l *models.Label) error {
	err := r.c.execOne(ctx, `UPDATE labels SET name = ?, color = ? WHERE id = ?`, l.Name, l.Color, l.ID)
	if err != nil {
		return fmt.Errorf("updating label %s: %w", l.ID, err)
	}
	return nil
}

// DeleteLabel removes a label and detaches it from every card.
func (r *LabelRepo) DeleteLabel(ctx context.Context, id types.LabelID) error {
	if err := r.c.execOne(ctx, `DELETE FROM labels WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting label %s: %w", id, err)
	}
	return nil
}

// AttachLabel links a label to a card. Attaching twice is a no-op.
func (r *LabelRepo) AttachLabel(ctx context.Context, cardID types.CardID, labelID types.LabelID) error {
	_, err := r.c.exec(ctx,
		`INSERT INTO card_labels (card_id, label_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		cardID, labelID,
	)
	if err != nil {
		return fmt.Errorf("attaching label %s to card %s: %w", labelID, cardID, err)
	}
	return nil
}

// DetachLabel unlinks a label from a card. Detaching a missing link is a no-op.
func (r *LabelRepo) DetachLabel(ctx context.Context, cardID types.CardID, labelID types.LabelID) error {
	_, err := r.c.exec(ctx, `DELETE FROM card_labels WHERE card_id = ? AND label_id = ?`, cardID, labelID)
	if err != nil {
		return fmt.Errorf("detaching label %s from card %s: %w", labelID, cardID, err)
	}
	return nil
}
