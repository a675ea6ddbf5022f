package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/reorder"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/types"
)

// Service defines all list-related business operations
type Service interface {
	// Read operations
	GetList(ctx context.Context, id types.ListID) (*models.List, error)
	ListsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.List, error)

	// Write operations
	CreateList(ctx context.Context, req CreateListRequest) (*models.List, error)
	UpdateList(ctx context.Context, req UpdateListRequest) (*models.List, error)
	MoveList(ctx context.Context, req MoveListRequest) (*MoveResult, error)
	DeleteList(ctx context.Context, userID types.UserID, id types.ListID) error
}

// CreateListRequest encapsulates data for creating a list. The list is
// appended after the board's last list.
type CreateListRequest struct {
	UserID  types.UserID
	BoardID types.BoardID
	Title   string
	Color   string // empty uses the default color
}

// UpdateListRequest encapsulates data for renaming or recoloring a list.
// Nil fields are left unchanged.
type UpdateListRequest struct {
	UserID types.UserID
	ID     types.ListID
	Title  *string
	Color  *string
}

// MoveListRequest moves a list to Position, zero-based, on its board.
type MoveListRequest struct {
	UserID   types.UserID
	ID       types.ListID
	Position int
}

// MoveResult is the moved list and every position change that was written.
type MoveResult struct {
	List    *models.List                     `json:"list"`
	Changes []position.Change[types.BoardID] `json:"changes"`
}

type service struct {
	deps  *services.Deps
	order reorder.Lists
}

// NewService creates a new list service
func NewService(deps *services.Deps) Service {
	return &service{deps: deps}
}

// GetList retrieves a list by ID
func (s *service) GetList(ctx context.Context, id types.ListID) (*models.List, error) {
	if id == "" {
		return nil, ErrInvalidListID
	}
	return s.deps.Repo.GetList(ctx, id)
}

// ListsByBoard returns a board's lists in position order
func (s *service) ListsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.List, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	return s.deps.Repo.ListsByBoard(ctx, boardID)
}

// CreateList appends a new list to a board
func (s *service) CreateList(ctx context.Context, req CreateListRequest) (*models.List, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.BoardID == "" {
		return nil, ErrInvalidBoardID
	}
	color, err := normalizeColor(req.Color)
	if err != nil {
		return nil, err
	}

	l := &models.List{
		ID:      types.NewListID(),
		BoardID: req.BoardID,
		Title:   req.Title,
		Color:   color,
	}

	err = s.deps.Mutate(ctx, services.Keys(locker.BoardKey(req.BoardID)), func(tx *database.Repository) error {
		if err := tx.LockBoard(ctx, req.BoardID); err != nil {
			return err
		}
		if _, err := services.ModifiableBoard(ctx, tx, req.BoardID, req.UserID); err != nil {
			return err
		}

		siblings, err := tx.ListsByBoard(ctx, req.BoardID)
		if err != nil {
			return err
		}
		if max := s.deps.Limits.MaxListsPerBoard; max > 0 && len(siblings) >= max {
			return fmt.Errorf("%w (%d)", ErrListLimitReached, max)
		}

		if l.Position, err = s.order.OnCreate(req.BoardID, siblings); err != nil {
			return err
		}
		return tx.CreateList(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("list created", "board_id", l.BoardID, "list_id", l.ID, "position", l.Position)
	s.deps.Notify(events.EventListsChanged, l.BoardID)
	return l, nil
}

// UpdateList renames and/or recolors a list. Positions are untouched.
func (s *service) UpdateList(ctx context.Context, req UpdateListRequest) (*models.List, error) {
	if req.ID == "" {
		return nil, ErrInvalidListID
	}

	var l *models.List
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if l, err = tx.GetList(ctx, req.ID); err != nil {
			return err
		}
		if _, err := services.ModifiableBoard(ctx, tx, l.BoardID, req.UserID); err != nil {
			return err
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if err := s.validateTitle(title); err != nil {
				return err
			}
			l.Title = title
		}
		if req.Color != nil {
			if l.Color, err = normalizeColor(*req.Color); err != nil {
				return err
			}
		}
		return tx.UpdateListDetails(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Notify(events.EventListsChanged, l.BoardID)
	return l, nil
}

// MoveList moves a list within its board. Moving to the current position
// writes nothing.
func (s *service) MoveList(ctx context.Context, req MoveListRequest) (*MoveResult, error) {
	if req.ID == "" {
		return nil, ErrInvalidListID
	}

	keys := func(ctx context.Context) ([]string, error) {
		l, err := s.deps.Repo.GetList(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return []string{locker.BoardKey(l.BoardID)}, nil
	}

	var result *MoveResult
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		moved, err := tx.GetList(ctx, req.ID)
		if err != nil {
			return err
		}
		if err := tx.LockBoard(ctx, moved.BoardID); err != nil {
			return err
		}
		if _, err := services.ModifiableBoard(ctx, tx, moved.BoardID, req.UserID); err != nil {
			return err
		}

		siblings, err := tx.ListsByBoard(ctx, moved.BoardID)
		if err != nil {
			return err
		}
		from := moved.Position
		ws, err := s.order.OnMove(moved, siblings, req.Position)
		if err != nil {
			return err
		}
		changes := ws.Changes()
		if err := tx.ApplyListChanges(ctx, changes); err != nil {
			return err
		}

		slog.Debug("list moved", "list_id", moved.ID, "from", from, "to", moved.Position, "shifted", len(changes))
		result = &MoveResult{List: moved, Changes: changes}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Changes) > 0 {
		s.deps.Notify(events.EventListsChanged, result.List.BoardID)
	}
	return result, nil
}

// DeleteList deletes a list with its cards and closes the gap it leaves in
// the same transaction.
func (s *service) DeleteList(ctx context.Context, userID types.UserID, id types.ListID) error {
	if id == "" {
		return ErrInvalidListID
	}

	keys := func(ctx context.Context) ([]string, error) {
		l, err := s.deps.Repo.GetList(ctx, id)
		if err != nil {
			return nil, err
		}
		return []string{locker.BoardKey(l.BoardID), locker.ListKey(id)}, nil
	}

	var boardID types.BoardID
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		deleted, err := tx.GetList(ctx, id)
		if err != nil {
			return err
		}
		boardID = deleted.BoardID
		if err := tx.LockBoard(ctx, boardID); err != nil {
			return err
		}
		if _, err := services.ModifiableBoard(ctx, tx, boardID, userID); err != nil {
			return err
		}

		siblings, err := tx.ListsByBoard(ctx, boardID)
		if err != nil {
			return err
		}
		ws, err := s.order.OnDelete(deleted, siblings)
		if err != nil {
			return err
		}

		if err := tx.DeleteList(ctx, id); err != nil {
			return err
		}
		return tx.ApplyListChanges(ctx, ws.Changes())
	})
	if err != nil {
		return err
	}

	slog.Info("list deleted", "board_id", boardID, "list_id", id)
	s.deps.Notify(events.EventListsChanged, boardID)
	return nil
}

func (s *service) validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return services.CheckLength(title, s.deps.Limits.MaxListTitleLength, ErrTitleTooLong)
}

func normalizeColor(color string) (string, error) {
	if strings.TrimSpace(color) == "" {
		return models.DefaultListColor, nil
	}
	if !models.IsValidListColor(color) {
		return "", fmt.Errorf("%w: %s", ErrInvalidColor, color)
	}
	return models.NormalizeListColor(color), nil
}
