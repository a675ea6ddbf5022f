package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/reorder"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/types"
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, id types.CardID) (*models.Card, error)
	CardsByList(ctx context.Context, listID types.ListID) ([]*models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	MoveCard(ctx context.Context, req MoveCardRequest) (*MoveResult, error)
	DeleteCard(ctx context.Context, userID types.UserID, id types.CardID) error
	CloneCard(ctx context.Context, req CloneCardRequest) (*models.Card, error)

	// Label operations
	AttachLabel(ctx context.Context, userID types.UserID, cardID types.CardID, labelID types.LabelID) error
	DetachLabel(ctx context.Context, userID types.UserID, cardID types.CardID, labelID types.LabelID) error
	SetLabels(ctx context.Context, userID types.UserID, cardID types.CardID, labelIDs []types.LabelID) ([]*models.Label, error)
}

// CreateCardRequest encapsulates data for creating a card at the end of a list
type CreateCardRequest struct {
	UserID      types.UserID
	ListID      types.ListID
	Title       string
	Description string
	Priority    models.Priority
	DueDate     *time.Time
}

// UpdateCardRequest encapsulates data for updating a card. Nil fields are
// left unchanged; ClearDueDate removes the due date.
type UpdateCardRequest struct {
	UserID       types.UserID
	ID           types.CardID
	Title        *string
	Description  *string
	Priority     *models.Priority
	Completed    *bool
	DueDate      *time.Time
	ClearDueDate bool
}

// MoveCardRequest moves a card within its list or to another list.
type MoveCardRequest struct {
	UserID types.UserID
	ID     types.CardID
	// TargetListID is the destination; empty keeps the card's list.
	TargetListID types.ListID
	// Position is the zero-based destination slot; nil appends.
	Position *int
	// DryRun computes the write set without persisting it.
	DryRun bool
}

// CloneCardRequest copies a card to the end of TargetListID (empty: its own
// list).
type CloneCardRequest struct {
	UserID       types.UserID
	ID           types.CardID
	TargetListID types.ListID
}

// MoveResult is the moved card and every position change of the move.
type MoveResult struct {
	Card    *models.Card                    `json:"card"`
	Changes []position.Change[types.ListID] `json:"changes"`
	DryRun  bool                            `json:"dry_run"`
}

type service struct {
	deps *services.Deps
}

// NewService creates a new card service
func NewService(deps *services.Deps) Service {
	return &service{deps: deps}
}

// GetCard retrieves a card with its labels
func (s *service) GetCard(ctx context.Context, id types.CardID) (*models.Card, error) {
	if id == "" {
		return nil, ErrInvalidCardID
	}

	var c *models.Card
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if c, err = tx.GetCard(ctx, id); err != nil {
			return err
		}
		c.Labels, err = tx.LabelsForCard(ctx, id)
		return err
	})
	return c, err
}

// CardsByList returns a list's cards in position order, with labels
func (s *service) CardsByList(ctx context.Context, listID types.ListID) ([]*models.Card, error) {
	if listID == "" {
		return nil, ErrInvalidListID
	}

	var cards []*models.Card
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		if _, err := tx.GetList(ctx, listID); err != nil {
			return err
		}
		var err error
		if cards, err = tx.CardsByList(ctx, listID); err != nil {
			return err
		}
		for _, c := range cards {
			if c.Labels, err = tx.LabelsForCard(ctx, c.ID); err != nil {
				return err
			}
		}
		return nil
	})
	return cards, err
}

// CreateCard appends a new card to a list
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate(req.Title, req.Description); err != nil {
		return nil, err
	}
	if req.ListID == "" {
		return nil, ErrInvalidListID
	}
	priority, ok := models.ParsePriority(string(req.Priority))
	if !ok {
		return nil, ErrInvalidPriority
	}

	c := &models.Card{
		ID:          types.NewCardID(),
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	var boardID types.BoardID
	err := s.deps.Mutate(ctx, services.Keys(locker.ListKey(req.ListID)), func(tx *database.Repository) error {
		var err error
		boardID, err = s.appendCard(ctx, tx, req.UserID, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("card created", "list_id", c.ListID, "card_id", c.ID, "position", c.Position)
	s.deps.Notify(events.EventCardsChanged, boardID)
	return c, nil
}

// appendCard inserts c at the end of c.ListID, enforcing the list capacity.
func (s *service) appendCard(ctx context.Context, tx *database.Repository, userID types.UserID, c *models.Card) (types.BoardID, error) {
	if err := tx.LockList(ctx, c.ListID); err != nil {
		return "", err
	}
	l, err := tx.GetList(ctx, c.ListID)
	if err != nil {
		return "", err
	}
	if _, err := services.ModifiableBoard(ctx, tx, l.BoardID, userID); err != nil {
		return "", err
	}

	siblings, err := tx.CardsByList(ctx, c.ListID)
	if err != nil {
		return "", err
	}
	if max := s.deps.Limits.MaxCardsPerList; max > 0 && len(siblings) >= max {
		return "", fmt.Errorf("list %s: %w (%d)", c.ListID, ErrListFull, max)
	}

	if c.Position, err = (reorder.Cards{}).OnCreate(c.ListID, siblings); err != nil {
		return "", err
	}
	return l.BoardID, tx.CreateCard(ctx, c)
}

// UpdateCard changes the card's content fields. Position and list are only
// changed by MoveCard.
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	if req.ID == "" {
		return nil, ErrInvalidCardID
	}
	if req.Title == nil && req.Description == nil && req.Priority == nil &&
		req.Completed == nil && req.DueDate == nil && !req.ClearDueDate {
		return nil, ErrNothingToUpdate
	}

	var (
		c       *models.Card
		boardID types.BoardID
	)
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if c, boardID, err = s.loadModifiable(ctx, tx, req.UserID, req.ID); err != nil {
			return err
		}

		if req.Title != nil {
			c.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if err := s.validate(c.Title, c.Description); err != nil {
			return err
		}
		if req.Priority != nil {
			p, ok := models.ParsePriority(string(*req.Priority))
			if !ok {
				return ErrInvalidPriority
			}
			c.Priority = p
		}
		if req.Completed != nil {
			c.Completed = *req.Completed
		}
		if req.ClearDueDate {
			c.DueDate = nil
		} else if req.DueDate != nil {
			c.DueDate = req.DueDate
		}

		if err := tx.UpdateCardDetails(ctx, c); err != nil {
			return err
		}
		c.Labels, err = tx.LabelsForCard(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.deps.Notify(events.EventCardsChanged, boardID)
	return c, nil
}

// MoveCard moves a card inside its list or into another list on the same
// board. Both lists are locked for the duration of the move.
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) (*MoveResult, error) {
	if req.ID == "" {
		return nil, ErrInvalidCardID
	}

	if req.DryRun {
		var result *MoveResult
		err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
			c, err := tx.GetCard(ctx, req.ID)
			if err != nil {
				return err
			}
			plan, err := s.planMove(ctx, tx, req, c.ListID)
			if err != nil {
				return err
			}
			result = &MoveResult{Card: plan.card, Changes: plan.ws.Changes(), DryRun: true}
			return nil
		})
		return result, err
	}

	var source types.ListID
	keys := func(ctx context.Context) ([]string, error) {
		c, err := s.deps.Repo.GetCard(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		source = c.ListID
		target := req.TargetListID
		if target == "" {
			target = source
		}
		return []string{locker.ListKey(source), locker.ListKey(target)}, nil
	}

	var (
		result  *MoveResult
		boardID types.BoardID
	)
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		target := req.TargetListID
		if target == "" {
			target = source
		}
		for _, id := range sortedListIDs(source, target) {
			if err := tx.LockList(ctx, id); err != nil {
				return err
			}
		}

		plan, err := s.planMove(ctx, tx, req, source)
		if err != nil {
			return err
		}
		changes := plan.ws.Changes()
		if err := tx.ApplyCardChanges(ctx, changes); err != nil {
			return err
		}

		slog.Debug("card moved",
			"card_id", plan.card.ID,
			"from", fmt.Sprintf("%s/%d", plan.from, plan.fromPos),
			"to", fmt.Sprintf("%s/%d", plan.card.ListID, plan.card.Position),
			"shifted", len(changes))
		result = &MoveResult{Card: plan.card, Changes: changes}
		boardID = plan.boardID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Changes) > 0 {
		s.deps.Notify(events.EventCardsChanged, boardID)
	}
	return result, nil
}

type movePlan struct {
	card    *models.Card
	ws      *reorder.CardWriteSet
	boardID types.BoardID
	from    types.ListID
	fromPos int
}

// planMove loads fresh snapshots inside tx and computes the write set. The
// card must still be on source; otherwise the locks taken are the wrong ones
// and the caller retries.
func (s *service) planMove(ctx context.Context, tx *database.Repository, req MoveCardRequest, source types.ListID) (*movePlan, error) {
	c, err := tx.GetCard(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if c.ListID != source {
		return nil, fmt.Errorf("card %s left list %s: %w", c.ID, source, database.ErrStaleSnapshot)
	}
	plan := &movePlan{card: c, from: c.ListID, fromPos: c.Position}

	sourceList, err := tx.GetList(ctx, c.ListID)
	if err != nil {
		return nil, err
	}
	board, err := services.ModifiableBoard(ctx, tx, sourceList.BoardID, req.UserID)
	if err != nil {
		return nil, err
	}
	plan.boardID = board.ID

	siblings, err := tx.CardsByList(ctx, c.ListID)
	if err != nil {
		return nil, err
	}

	targetID := req.TargetListID
	if targetID == "" {
		targetID = c.ListID
	}
	target := siblings
	order := reorder.Cards{}

	if targetID != c.ListID {
		targetList, err := tx.GetList(ctx, targetID)
		if err != nil {
			return nil, err
		}
		targetBoard := board
		if targetList.BoardID != board.ID {
			if targetBoard, err = tx.GetBoard(ctx, targetList.BoardID); err != nil {
				return nil, err
			}
		}
		if target, err = tx.CardsByList(ctx, targetID); err != nil {
			return nil, err
		}
		order.Policy = reorder.BoardRules{
			SourceBoard:     board.ID,
			Targets:         map[types.ListID]reorder.Target{targetID: {List: targetList, Board: targetBoard}},
			MaxCardsPerList: s.deps.Limits.MaxCardsPerList,
		}
	}

	if req.Position == nil {
		plan.ws, err = order.OnMoveToEnd(c, siblings, targetID, target)
	} else {
		plan.ws, err = order.OnMoveAcrossLists(c, siblings, targetID, target, *req.Position)
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteCard deletes a card and closes the gap it leaves in the same
// transaction.
func (s *service) DeleteCard(ctx context.Context, userID types.UserID, id types.CardID) error {
	if id == "" {
		return ErrInvalidCardID
	}

	var listID types.ListID
	keys := func(ctx context.Context) ([]string, error) {
		c, err := s.deps.Repo.GetCard(ctx, id)
		if err != nil {
			return nil, err
		}
		listID = c.ListID
		return []string{locker.ListKey(listID)}, nil
	}

	var boardID types.BoardID
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		if err := tx.LockList(ctx, listID); err != nil {
			return err
		}
		deleted, bID, err := s.loadModifiable(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if deleted.ListID != listID {
			return fmt.Errorf("card %s left list %s: %w", id, listID, database.ErrStaleSnapshot)
		}
		boardID = bID

		siblings, err := tx.CardsByList(ctx, listID)
		if err != nil {
			return err
		}
		ws, err := (reorder.Cards{}).OnDelete(deleted, siblings)
		if err != nil {
			return err
		}

		if err := tx.DeleteCard(ctx, id); err != nil {
			return err
		}
		return tx.ApplyCardChanges(ctx, ws.Changes())
	})
	if err != nil {
		return err
	}

	slog.Info("card deleted", "list_id", listID, "card_id", id)
	s.deps.Notify(events.EventCardsChanged, boardID)
	return nil
}

// CloneCard copies a card's content and labels to the end of a list on the
// same board. The copy starts out not completed.
func (s *service) CloneCard(ctx context.Context, req CloneCardRequest) (*models.Card, error) {
	if req.ID == "" {
		return nil, ErrInvalidCardID
	}

	var target types.ListID
	keys := func(ctx context.Context) ([]string, error) {
		target = req.TargetListID
		if target == "" {
			c, err := s.deps.Repo.GetCard(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			target = c.ListID
		}
		return []string{locker.ListKey(target)}, nil
	}

	var (
		clone   *models.Card
		boardID types.BoardID
	)
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		original, sourceBoard, err := s.loadModifiable(ctx, tx, req.UserID, req.ID)
		if err != nil {
			return err
		}
		labels, err := tx.LabelsForCard(ctx, original.ID)
		if err != nil {
			return err
		}

		clone = &models.Card{
			ID:          types.NewCardID(),
			ListID:      target,
			Title:       original.Title,
			Description: original.Description,
			Priority:    original.Priority,
			DueDate:     original.DueDate,
		}
		if boardID, err = s.appendCard(ctx, tx, req.UserID, clone); err != nil {
			return err
		}
		if boardID != sourceBoard {
			return fmt.Errorf("clone to list %s: %w", target, ErrCrossBoardMove)
		}

		for _, l := range labels {
			if err := tx.AttachLabel(ctx, clone.ID, l.ID); err != nil {
				return err
			}
		}
		clone.Labels = labels
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("card cloned", "card_id", req.ID, "clone_id", clone.ID, "list_id", clone.ListID)
	s.deps.Notify(events.EventCardsChanged, boardID)
	return clone, nil
}

// loadModifiable loads a card and checks userID may change its board.
func (s *service) loadModifiable(ctx context.Context, tx *database.Repository, userID types.UserID, id types.CardID) (*models.Card, types.BoardID, error) {
	c, err := tx.GetCard(ctx, id)
	if err != nil {
		return nil, "", err
	}
	l, err := tx.GetList(ctx, c.ListID)
	if err != nil {
		return nil, "", err
	}
	if _, err := services.ModifiableBoard(ctx, tx, l.BoardID, userID); err != nil {
		return nil, "", err
	}
	return c, l.BoardID, nil
}

func (s *service) validate(title, description string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if err := services.CheckLength(title, s.deps.Limits.MaxCardTitleLength, ErrTitleTooLong); err != nil {
		return err
	}
	return services.CheckLength(description, s.deps.Limits.MaxDescriptionLength, ErrDescriptionTooLong)
}

// sortedListIDs returns the distinct ids in ascending order, the order row
// locks are taken in.
func sortedListIDs(a, b types.ListID) []types.ListID {
	switch {
	case a == b:
		return []types.ListID{a}
	case a < b:
		return []types.ListID{a, b}
	default:
		return []types.ListID{b, a}
	}
}
