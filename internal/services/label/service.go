package label

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/types"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all label-related business operations
type Service interface {
	// Read operations
	GetLabel(ctx context.Context, id types.LabelID) (*models.Label, error)
	LabelsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Label, error)
	LabelsForCard(ctx context.Context, cardID types.CardID) ([]*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	UpdateLabel(ctx context.Context, req UpdateLabelRequest) (*models.Label, error)
	DeleteLabel(ctx context.Context, userID types.UserID, id types.LabelID) error
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	UserID  types.UserID
	BoardID types.BoardID
	Name    string
	Color   string // Hex color like #FF5733
}

// UpdateLabelRequest encapsulates data for updating a label
type UpdateLabelRequest struct {
	UserID types.UserID
	ID     types.LabelID
	Name   *string
	Color  *string
}

type service struct {
	deps *services.Deps
}

// NewService creates a new label service
func NewService(deps *services.Deps) Service {
	return &service{deps: deps}
}

// GetLabel retrieves a label by ID
func (s *service) GetLabel(ctx context.Context, id types.LabelID) (*models.Label, error) {
	if id == "" {
		return nil, ErrInvalidLabelID
	}
	return s.deps.Repo.GetLabel(ctx, id)
}

// LabelsByBoard retrieves all labels defined on a board
func (s *service) LabelsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Label, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	return s.deps.Repo.LabelsByBoard(ctx, boardID)
}

// LabelsForCard retrieves the labels attached to a card
func (s *service) LabelsForCard(ctx context.Context, cardID types.CardID) ([]*models.Label, error) {
	return s.deps.Repo.LabelsForCard(ctx, cardID)
}

// CreateLabel creates a new label with validation
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	if req.BoardID == "" {
		return nil, ErrInvalidBoardID
	}
	l := &models.Label{
		ID:      types.NewLabelID(),
		BoardID: req.BoardID,
		Name:    strings.TrimSpace(req.Name),
		Color:   strings.ToUpper(req.Color),
	}
	if err := s.validate(l); err != nil {
		return nil, err
	}

	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		if _, err := services.ModifiableBoard(ctx, tx, req.BoardID, req.UserID); err != nil {
			return err
		}
		if err := checkUnique(ctx, tx, l); err != nil {
			return err
		}
		return tx.CreateLabel(ctx, l)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	s.deps.Notify(events.EventLabelChanged, l.BoardID)
	return l, nil
}

// UpdateLabel renames or recolors a label
func (s *service) UpdateLabel(ctx context.Context, req UpdateLabelRequest) (*models.Label, error) {
	if req.ID == "" {
		return nil, ErrInvalidLabelID
	}
	if req.Name == nil && req.Color == nil {
		return nil, ErrNothingToUpdate
	}

	var l *models.Label
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if l, err = tx.GetLabel(ctx, req.ID); err != nil {
			return err
		}
		if _, err := services.ModifiableBoard(ctx, tx, l.BoardID, req.UserID); err != nil {
			return err
		}

		if req.Name != nil {
			l.Name = strings.TrimSpace(*req.Name)
		}
		if req.Color != nil {
			l.Color = strings.ToUpper(*req.Color)
		}
		if err := s.validate(l); err != nil {
			return err
		}
		if err := checkUnique(ctx, tx, l); err != nil {
			return err
		}
		return tx.UpdateLabel(ctx, l)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	s.deps.Notify(events.EventLabelChanged, l.BoardID)
	return l, nil
}

// DeleteLabel deletes a label and detaches it from every card
func (s *service) DeleteLabel(ctx context.Context, userID types.UserID, id types.LabelID) error {
	if id == "" {
		return ErrInvalidLabelID
	}

	var boardID types.BoardID
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		l, err := tx.GetLabel(ctx, id)
		if err != nil {
			return err
		}
		boardID = l.BoardID
		if _, err := services.ModifiableBoard(ctx, tx, l.BoardID, userID); err != nil {
			return err
		}
		return tx.DeleteLabel(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	s.deps.Notify(events.EventLabelChanged, boardID)
	return nil
}

func (s *service) validate(l *models.Label) error {
	if l.Name == "" {
		return ErrEmptyName
	}
	if err := services.CheckLength(l.Name, s.deps.Limits.MaxLabelNameLength, ErrNameTooLong); err != nil {
		return err
	}
	if !hexColorRegex.MatchString(l.Color) {
		return ErrInvalidColor
	}
	return nil
}

// checkUnique rejects a name another label on the board already uses,
// ignoring case.
func checkUnique(ctx context.Context, tx *database.Repository, l *models.Label) error {
	existing, err := tx.LabelsByBoard(ctx, l.BoardID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID != l.ID && strings.EqualFold(other.Name, l.Name) {
			return fmt.Errorf("%q: %w", l.Name, ErrDuplicateName)
		}
	}
	return nil
}
