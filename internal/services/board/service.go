package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gosimple/slug"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/types"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ResolveBoard(ctx context.Context, owner types.UserID, ref string) (*models.Board, error)
	ListBoards(ctx context.Context, owner types.UserID, includeArchived bool) ([]*models.Board, error)
	GetBoardView(ctx context.Context, id types.BoardID) (*View, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error)
	SetArchived(ctx context.Context, userID types.UserID, id types.BoardID, archived bool) (*models.Board, error)
	SetStarred(ctx context.Context, userID types.UserID, id types.BoardID, starred bool) (*models.Board, error)
	DeleteBoard(ctx context.Context, userID types.UserID, id types.BoardID) error
	Repair(ctx context.Context, userID types.UserID, id types.BoardID) (int, error)

	// Membership
	ListMembers(ctx context.Context, userID types.UserID, id types.BoardID) ([]*models.Member, error)
	AddMember(ctx context.Context, req MemberRequest) (*models.Member, error)
	UpdateMemberRole(ctx context.Context, req MemberRequest) (*models.Member, error)
	RemoveMember(ctx context.Context, userID types.UserID, id types.BoardID, memberID types.UserID) error
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	OwnerID     types.UserID
	Title       string
	Description string
}

// UpdateBoardRequest encapsulates data for updating a board. Nil fields are
// left unchanged.
type UpdateBoardRequest struct {
	UserID      types.UserID
	ID          types.BoardID
	Title       *string
	Description *string
}

// MemberRequest adds a member or changes a member's role. UserID is the
// user making the change. An empty Role means editor.
type MemberRequest struct {
	UserID   types.UserID
	BoardID  types.BoardID
	MemberID types.UserID
	Role     models.Role
}

// View is a board with its lists and their cards, in position order.
type View struct {
	Board *models.Board `json:"board"`
	Lists []ListView    `json:"lists"`
}

// ListView is one list of a View.
type ListView struct {
	List  *models.List   `json:"list"`
	Cards []*models.Card `json:"cards"`
}

type service struct {
	deps *services.Deps
}

// NewService creates a new board service
func NewService(deps *services.Deps) Service {
	return &service{deps: deps}
}

// GetBoard retrieves a board by ID
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}
	return s.deps.Repo.GetBoard(ctx, id)
}

// ResolveBoard finds one of owner's boards by ID or by slug.
func (s *service) ResolveBoard(ctx context.Context, owner types.UserID, ref string) (*models.Board, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrInvalidBoardID
	}

	b, err := s.deps.Repo.GetBoard(ctx, types.BoardID(ref))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	return s.deps.Repo.GetBoardBySlug(ctx, owner, slug.Make(ref))
}

// ListBoards returns owner's boards, starred first
func (s *service) ListBoards(ctx context.Context, owner types.UserID, includeArchived bool) ([]*models.Board, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}
	return s.deps.Repo.ListBoards(ctx, owner, includeArchived)
}

// GetBoardView loads the whole board in one read transaction.
func (s *service) GetBoardView(ctx context.Context, id types.BoardID) (*View, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}

	var view *View
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		b, err := tx.GetBoard(ctx, id)
		if err != nil {
			return err
		}
		lists, err := tx.ListsByBoard(ctx, id)
		if err != nil {
			return err
		}

		view = &View{Board: b, Lists: make([]ListView, 0, len(lists))}
		for _, l := range lists {
			cards, err := tx.CardsByList(ctx, l.ID)
			if err != nil {
				return err
			}
			for _, c := range cards {
				if c.Labels, err = tx.LabelsForCard(ctx, c.ID); err != nil {
					return err
				}
			}
			view.Lists = append(view.Lists, ListView{List: l, Cards: cards})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// CreateBoard creates a board with a slug unique among the owner's boards
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate(req.Title, req.Description); err != nil {
		return nil, err
	}
	if req.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	b := &models.Board{
		ID:          types.NewBoardID(),
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
	}

	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		sl, err := uniqueSlug(ctx, tx, req.OwnerID, req.Title)
		if err != nil {
			return err
		}
		b.Slug = sl
		return tx.CreateBoard(ctx, b)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	slog.Info("board created", "board_id", b.ID, "slug", b.Slug)
	s.deps.Notify(events.EventBoardChanged, b.ID)
	return b, nil
}

// UpdateBoard changes title and/or description. A new title gets a new slug.
func (s *service) UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error) {
	if req.ID == "" {
		return nil, ErrInvalidBoardID
	}
	if req.Title == nil && req.Description == nil {
		return nil, ErrNothingToUpdate
	}

	var b *models.Board
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if b, _, err = services.AdminBoard(ctx, tx, req.ID, req.UserID); err != nil {
			return err
		}

		title, description := b.Title, b.Description
		if req.Title != nil {
			title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := s.validate(title, description); err != nil {
			return err
		}

		if title != b.Title && slug.Make(title) != b.Slug {
			if b.Slug, err = uniqueSlug(ctx, tx, b.OwnerID, title); err != nil {
				return err
			}
		}
		b.Title, b.Description = title, description
		return tx.UpdateBoard(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Notify(events.EventBoardChanged, b.ID)
	return b, nil
}

// SetArchived archives or restores a board. Owners and admins may do this. Archived boards reject list
// and card changes.
func (s *service) SetArchived(ctx context.Context, userID types.UserID, id types.BoardID, archived bool) (*models.Board, error) {
	return s.setFlag(ctx, userID, id, func(b *models.Board) { b.Archived = archived })
}

// SetStarred stars or unstars a board.
func (s *service) SetStarred(ctx context.Context, userID types.UserID, id types.BoardID, starred bool) (*models.Board, error) {
	return s.setFlag(ctx, userID, id, func(b *models.Board) { b.Starred = starred })
}

func (s *service) setFlag(ctx context.Context, userID types.UserID, id types.BoardID, set func(*models.Board)) (*models.Board, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}

	var b *models.Board
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		var err error
		if b, _, err = services.AdminBoard(ctx, tx, id, userID); err != nil {
			return err
		}
		set(b)
		return tx.UpdateBoard(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Notify(events.EventBoardChanged, id)
	return b, nil
}

// DeleteBoard deletes a board with all its lists, cards and labels
func (s *service) DeleteBoard(ctx context.Context, userID types.UserID, id types.BoardID) error {
	if id == "" {
		return ErrInvalidBoardID
	}

	err := s.deps.Mutate(ctx, services.Keys(locker.BoardKey(id)), func(tx *database.Repository) error {
		if _, err := services.OwnedBoard(ctx, tx, id, userID); err != nil {
			return err
		}
		return tx.DeleteBoard(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("board deleted", "board_id", id)
	s.deps.Notify(events.EventBoardDeleted, id)
	return nil
}

// Repair renumbers the lists of a board and the cards of each list to dense
// positions, keeping their relative order. It returns how many rows moved.
func (s *service) Repair(ctx context.Context, userID types.UserID, id types.BoardID) (int, error) {
	if id == "" {
		return 0, ErrInvalidBoardID
	}

	keys := func(ctx context.Context) ([]string, error) {
		lists, err := s.deps.Repo.ListsByBoard(ctx, id)
		if err != nil {
			return nil, err
		}
		names := []string{locker.BoardKey(id)}
		for _, l := range lists {
			names = append(names, locker.ListKey(l.ID))
		}
		return names, nil
	}

	var moved int
	err := s.deps.Mutate(ctx, keys, func(tx *database.Repository) error {
		moved = 0
		if _, _, err := services.AdminBoard(ctx, tx, id, userID); err != nil {
			return err
		}
		if err := tx.LockBoard(ctx, id); err != nil {
			return err
		}

		lists, err := tx.ListsByBoard(ctx, id)
		if err != nil {
			return err
		}
		listSet, err := compact(id, lists)
		if err != nil {
			return err
		}
		if err := tx.ApplyListChanges(ctx, listSet.Changes()); err != nil {
			return err
		}
		moved += listSet.Len()

		for _, l := range lists {
			cards, err := tx.CardsByList(ctx, l.ID)
			if err != nil {
				return err
			}
			cardSet, err := compact(l.ID, cards)
			if err != nil {
				return err
			}
			if err := tx.ApplyCardChanges(ctx, cardSet.Changes()); err != nil {
				return err
			}
			moved += cardSet.Len()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if moved > 0 {
		slog.Warn("board positions repaired", "board_id", id, "shifted", moved)
		s.deps.Notify(events.EventListsChanged, id)
	}
	return moved, nil
}

// compact returns the write set that renumbers items densely, or an empty
// one when they already are.
func compact[K comparable, T position.Item[K]](key K, items []T) (*position.WriteSet[K, T], error) {
	coll, err := position.NewCollection(key, items)
	if err != nil {
		return nil, err
	}

	set := position.NewWriteSet[K, T]()
	if err := coll.Validate(); err != nil {
		slog.Warn("positions not dense", "container", key, "error", err)
		set.ApplyShifts(position.Compact[K](coll.Items()))
	}
	return set, nil
}

func (s *service) validate(title, description string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if err := services.CheckLength(title, s.deps.Limits.MaxBoardTitleLength, ErrTitleTooLong); err != nil {
		return err
	}
	return services.CheckLength(description, s.deps.Limits.MaxBoardDescriptionLength, ErrDescriptionTooLong)
}

// uniqueSlug derives a slug from title, suffixing -2, -3, ... until it is
// unused among owner's boards.
func uniqueSlug(ctx context.Context, repo *database.Repository, owner types.UserID, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "board"
	}

	candidate := base
	for n := 2; ; n++ {
		taken, err := repo.SlugTaken(ctx, owner, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
