// Package services holds what the board, list, card and label services
// share: the lock, transaction and retry loop every positional mutation runs
// in, and board access checks by role.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/events"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// Deps are the collaborators every service needs.
type Deps struct {
	Repo    *database.Repository
	Locker  locker.Locker         // nil relies on database row locks alone
	Events  events.EventPublisher // nil disables notifications
	Limits  config.LimitsConfig
	Reorder config.ReorderConfig
}

// KeyFunc returns the lock keys one attempt of a mutation needs. It is
// evaluated again on every retry because a stale snapshot may mean the item
// changed container.
type KeyFunc func(ctx context.Context) ([]string, error)

// Keys is a KeyFunc for a fixed key set.
func Keys(keys ...string) KeyFunc {
	return func(context.Context) ([]string, error) { return keys, nil }
}

// Mutate runs fn in a transaction while holding the locks keys names. fn
// must load its snapshot through tx so that a retry, triggered by
// database.ErrStaleSnapshot, recomputes from fresh rows. At most
// Reorder.MaxRetries retries are made.
func (d *Deps) Mutate(ctx context.Context, keys KeyFunc, fn func(tx *database.Repository) error) error {
	attempts := d.Reorder.MaxRetries + 1
	for attempt := 1; ; attempt++ {
		err := d.attempt(ctx, keys, fn)
		if err == nil || !errors.Is(err, database.ErrStaleSnapshot) || attempt >= attempts {
			return err
		}
		slog.Debug("stale snapshot, retrying", "attempt", attempt, "error", err)
	}
}

func (d *Deps) attempt(ctx context.Context, keys KeyFunc, fn func(tx *database.Repository) error) error {
	names, err := keys(ctx)
	if err != nil {
		return err
	}

	if d.Locker != nil && len(names) > 0 {
		lockCtx := ctx
		if d.Reorder.LockTimeout > 0 {
			var cancel context.CancelFunc
			lockCtx, cancel = context.WithTimeout(ctx, d.Reorder.LockTimeout)
			defer cancel()
		}

		release, err := locker.AcquireAll(lockCtx, d.Locker, names...)
		if err != nil {
			return err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("failed to release locks", "keys", names, "error", err)
			}
		}()
	}

	return d.Repo.WithTx(ctx, fn)
}

// Notify publishes a change event for boardID. Failures are logged only.
func (d *Deps) Notify(eventType events.EventType, boardID types.BoardID) {
	events.Notify(d.Events, eventType, boardID)
}

// BoardRole loads boardID and reports userID's role on it. Users who
// neither own the board nor are members get ErrAccessDenied.
func BoardRole(ctx context.Context, repo *database.Repository, boardID types.BoardID, userID types.UserID) (*models.Board, models.Role, error) {
	b, err := repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, "", err
	}
	if b.IsOwner(userID) {
		return b, models.RoleOwner, nil
	}

	m, err := repo.GetMember(ctx, boardID, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, "", fmt.Errorf("board %s: %w", boardID, ErrAccessDenied)
	}
	if err != nil {
		return nil, "", err
	}
	return b, m.Role, nil
}

// ModifiableBoard loads boardID and checks that userID may change its
// contents: the user owns it or is an admin or editor, and it is not
// archived.
func ModifiableBoard(ctx context.Context, repo *database.Repository, boardID types.BoardID, userID types.UserID) (*models.Board, error) {
	b, role, err := BoardRole(ctx, repo, boardID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanWrite() {
		return nil, fmt.Errorf("board %s (%s): %w", boardID, role, ErrAccessDenied)
	}
	if !b.IsActive() {
		return nil, fmt.Errorf("board %s: %w", boardID, ErrBoardArchived)
	}
	return b, nil
}

// AdminBoard loads boardID and checks that userID may change its settings
// and members. Archived boards pass, so they can still be unarchived.
func AdminBoard(ctx context.Context, repo *database.Repository, boardID types.BoardID, userID types.UserID) (*models.Board, models.Role, error) {
	b, role, err := BoardRole(ctx, repo, boardID, userID)
	if err != nil {
		return nil, "", err
	}
	if !role.CanAdmin() {
		return nil, "", fmt.Errorf("board %s (%s): %w", boardID, role, ErrAccessDenied)
	}
	return b, role, nil
}

// OwnedBoard loads boardID and checks that userID owns it. Archived boards
// pass, so they can still be deleted.
func OwnedBoard(ctx context.Context, repo *database.Repository, boardID types.BoardID, userID types.UserID) (*models.Board, error) {
	b, err := repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !b.IsOwner(userID) {
		return nil, fmt.Errorf("board %s: %w", boardID, ErrAccessDenied)
	}
	return b, nil
}

// CheckLength returns err wrapped with the limit when s is longer than max
// characters.
func CheckLength(s string, max int, err error) error {
	if max > 0 && utf8.RuneCountInString(s) > max {
		return fmt.Errorf("%w (max %d characters)", err, max)
	}
	return nil
}
