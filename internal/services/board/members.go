package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ListMembers returns everyone with access to the board, the owner first.
// Any role may list members.
func (s *service) ListMembers(ctx context.Context, userID types.UserID, id types.BoardID) ([]*models.Member, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}

	var members []*models.Member
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		b, _, err := services.BoardRole(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		rest, err := tx.MembersByBoard(ctx, id)
		if err != nil {
			return err
		}
		owner := &models.Member{BoardID: id, UserID: b.OwnerID, Role: models.RoleOwner, CreatedAt: b.CreatedAt}
		members = append([]*models.Member{owner}, rest...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember gives another user a role on the board. Owners and admins may
// add members; only the owner may add an admin.
func (s *service) AddMember(ctx context.Context, req MemberRequest) (*models.Member, error) {
	if err := validateMemberRequest(&req); err != nil {
		return nil, err
	}

	m := &models.Member{BoardID: req.BoardID, UserID: req.MemberID, Role: req.Role}
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		b, role, err := activeAdminBoard(ctx, tx, req.BoardID, req.UserID)
		if err != nil {
			return err
		}
		if b.IsOwner(req.MemberID) {
			return ErrOwnerMember
		}
		if req.Role == models.RoleAdmin && role != models.RoleOwner {
			return ErrAdminOnly
		}

		_, err = tx.GetMember(ctx, req.BoardID, req.MemberID)
		switch {
		case err == nil:
			return fmt.Errorf("%s: %w", req.MemberID, ErrAlreadyMember)
		case !errors.Is(err, database.ErrNotFound):
			return err
		}
		return tx.AddMember(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("board member added", "board_id", req.BoardID, "user_id", req.MemberID, "role", req.Role)
	s.deps.Notify(events.EventMembersChanged, req.BoardID)
	return m, nil
}

// UpdateMemberRole changes a member's role. Only the owner may promote a
// member to admin or change an admin's role.
func (s *service) UpdateMemberRole(ctx context.Context, req MemberRequest) (*models.Member, error) {
	if err := validateMemberRequest(&req); err != nil {
		return nil, err
	}

	var m *models.Member
	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		_, role, err := activeAdminBoard(ctx, tx, req.BoardID, req.UserID)
		if err != nil {
			return err
		}
		if m, err = tx.GetMember(ctx, req.BoardID, req.MemberID); err != nil {
			return err
		}
		if (m.Role == models.RoleAdmin || req.Role == models.RoleAdmin) && role != models.RoleOwner {
			return ErrAdminOnly
		}
		if m.Role == req.Role {
			return nil
		}
		m.Role = req.Role
		return tx.UpdateMemberRole(ctx, req.BoardID, req.MemberID, req.Role)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Notify(events.EventMembersChanged, req.BoardID)
	return m, nil
}

// RemoveMember takes a member off the board. Only the owner may remove an
// admin.
func (s *service) RemoveMember(ctx context.Context, userID types.UserID, id types.BoardID, memberID types.UserID) error {
	req := MemberRequest{UserID: userID, BoardID: id, MemberID: memberID, Role: models.RoleViewer}
	if err := validateMemberRequest(&req); err != nil {
		return err
	}

	err := s.deps.Repo.WithTx(ctx, func(tx *database.Repository) error {
		_, role, err := activeAdminBoard(ctx, tx, id, userID)
		if err != nil {
			return err
		}
		m, err := tx.GetMember(ctx, id, memberID)
		if err != nil {
			return err
		}
		if m.Role == models.RoleAdmin && role != models.RoleOwner {
			return ErrAdminOnly
		}
		return tx.RemoveMember(ctx, id, memberID)
	})
	if err != nil {
		return err
	}

	slog.Info("board member removed", "board_id", id, "user_id", memberID)
	s.deps.Notify(events.EventMembersChanged, id)
	return nil
}

func validateMemberRequest(req *MemberRequest) error {
	if req.BoardID == "" {
		return ErrInvalidBoardID
	}
	if req.MemberID == "" {
		return ErrMissingUser
	}
	if req.MemberID == req.UserID {
		return ErrSelfMembership
	}
	if req.Role == "" {
		req.Role = models.RoleEditor
	}
	if _, err := models.ParseRole(string(req.Role)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}
	return nil
}

// activeAdminBoard is AdminBoard for membership changes, which archived
// boards reject.
func activeAdminBoard(ctx context.Context, tx *database.Repository, id types.BoardID, userID types.UserID) (*models.Board, models.Role, error) {
	b, role, err := services.AdminBoard(ctx, tx, id, userID)
	if err != nil {
		return nil, "", err
	}
	if !b.IsActive() {
		return nil, "", fmt.Errorf("board %s: %w", id, services.ErrBoardArchived)
	}
	return b, role, nil
}
