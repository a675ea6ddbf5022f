package card

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// AttachLabel adds a board label to a card. Attaching twice is a no-op.
func (s *service) AttachLabel(ctx context.Context, userID types.UserID, cardID types.CardID, labelID types.LabelID) error {
	_, err := s.updateLabels(ctx, userID, cardID, func(current mapset.Set[types.LabelID]) mapset.Set[types.LabelID] {
		next := current.Clone()
		next.Add(labelID)
		return next
	})
	return err
}

// DetachLabel removes a label from a card. Detaching a missing label is a
// no-op.
func (s *service) DetachLabel(ctx context.Context, userID types.UserID, cardID types.CardID, labelID types.LabelID) error {
	_, err := s.updateLabels(ctx, userID, cardID, func(current mapset.Set[types.LabelID]) mapset.Set[types.LabelID] {
		next := current.Clone()
		next.Remove(labelID)
		return next
	})
	return err
}

// SetLabels replaces the card's labels with labelIDs.
func (s *service) SetLabels(ctx context.Context, userID types.UserID, cardID types.CardID, labelIDs []types.LabelID) ([]*models.Label, error) {
	return s.updateLabels(ctx, userID, cardID, func(mapset.Set[types.LabelID]) mapset.Set[types.LabelID] {
		return mapset.NewThreadUnsafeSet(labelIDs...)
	})
}

// updateLabels computes the card's new label set from the current one and
// writes only the difference. It returns the labels attached afterwards.
func (s *service) updateLabels(ctx context.Context, userID types.UserID, cardID types.CardID, next func(current mapset.Set[types.LabelID]) mapset.Set[types.LabelID]) ([]*models.Label, error) {
	if cardID == "" {
		return nil, ErrInvalidCardID
	}

	var (
		labels  []*models.Label
		boardID types.BoardID
		changed bool
	)
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		c, bID, err := s.loadModifiable(ctx, tx, userID, cardID)
		if err != nil {
			return err
		}
		boardID = bID

		attached, err := tx.LabelsForCard(ctx, c.ID)
		if err != nil {
			return err
		}
		current := mapset.NewThreadUnsafeSet[types.LabelID]()
		for _, l := range attached {
			current.Add(l.ID)
		}
		desired := next(current)

		for _, id := range desired.Difference(current).ToSlice() {
			l, err := tx.GetLabel(ctx, id)
			if err != nil {
				return err
			}
			if l.BoardID != boardID {
				return fmt.Errorf("label %s: %w", id, ErrLabelNotOnBoard)
			}
			if err := tx.AttachLabel(ctx, c.ID, id); err != nil {
				return err
			}
			changed = true
		}
		for _, id := range current.Difference(desired).ToSlice() {
			if err := tx.DetachLabel(ctx, c.ID, id); err != nil {
				return err
			}
			changed = true
		}

		labels, err = tx.LabelsForCard(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.deps.Notify(events.EventCardsChanged, boardID)
	}
	return labels, nil
}
