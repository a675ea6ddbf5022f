package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/testutil"
	"github.com/thenoetrevino/boardly/internal/types"
)

func TestMutate_RetriesStaleSnapshot(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	deps.Reorder.MaxRetries = 3

	var keyCalls, calls int
	keys := func(context.Context) ([]string, error) {
		keyCalls++
		return []string{"k"}, nil
	}
	err := deps.Mutate(context.Background(), keys, func(*database.Repository) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("attempt %d: %w", calls, database.ErrStaleSnapshot)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, keyCalls, "keys are recomputed on every attempt")
}

func TestMutate_GivesUpAfterMaxRetries(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	deps.Reorder.MaxRetries = 2

	calls := 0
	err := deps.Mutate(context.Background(), services.Keys("k"), func(*database.Repository) error {
		calls++
		return database.ErrStaleSnapshot
	})

	assert.ErrorIs(t, err, database.ErrStaleSnapshot)
	assert.Equal(t, 3, calls)
}

func TestMutate_ZeroRetries(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	deps.Reorder.MaxRetries = 0

	calls := 0
	err := deps.Mutate(context.Background(), services.Keys("k"), func(*database.Repository) error {
		calls++
		return database.ErrStaleSnapshot
	})

	assert.ErrorIs(t, err, database.ErrStaleSnapshot)
	assert.Equal(t, 1, calls)
}

func TestMutate_OtherErrorsAreNotRetried(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	boom := errors.New("boom")

	calls := 0
	err := deps.Mutate(context.Background(), services.Keys("k"), func(*database.Repository) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestMutate_LockTimeout(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	deps.Reorder.LockTimeout = 20 * time.Millisecond

	release, err := deps.Locker.Acquire(context.Background(), locker.BoardKey("b1"))
	require.NoError(t, err)
	defer func() { _ = release(context.Background()) }()

	called := false
	err = deps.Mutate(context.Background(), services.Keys(locker.BoardKey("b1")), func(*database.Repository) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, locker.ErrNotAcquired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestModifiableBoard(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	ctx := context.Background()

	b := &models.Board{ID: types.NewBoardID(), OwnerID: "alice", Title: "Roadmap", Slug: "roadmap"}
	require.NoError(t, deps.Repo.CreateBoard(ctx, b))

	got, err := services.ModifiableBoard(ctx, deps.Repo, b.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = services.ModifiableBoard(ctx, deps.Repo, b.ID, "mallory")
	assert.ErrorIs(t, err, services.ErrAccessDenied)

	b.Archived = true
	require.NoError(t, deps.Repo.UpdateBoard(ctx, b))
	_, err = services.ModifiableBoard(ctx, deps.Repo, b.ID, "alice")
	assert.ErrorIs(t, err, services.ErrBoardArchived)

	_, err = services.OwnedBoard(ctx, deps.Repo, b.ID, "alice")
	assert.NoError(t, err, "archived boards stay reachable for their owner")

	_, err = services.ModifiableBoard(ctx, deps.Repo, "missing", "alice")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestBoardAccess_ByRole(t *testing.T) {
	deps := testutil.NewTestDeps(t)
	ctx := context.Background()

	b := &models.Board{ID: types.NewBoardID(), OwnerID: "alice", Title: "Roadmap", Slug: "roadmap"}
	require.NoError(t, deps.Repo.CreateBoard(ctx, b))
	for user, role := range map[types.UserID]models.Role{
		"ada":    models.RoleAdmin,
		"eddie":  models.RoleEditor,
		"violet": models.RoleViewer,
	} {
		require.NoError(t, deps.Repo.AddMember(ctx, &models.Member{BoardID: b.ID, UserID: user, Role: role}))
	}

	tests := []struct {
		user   types.UserID
		role   models.Role
		modify bool
		admin  bool
	}{
		{"alice", models.RoleOwner, true, true},
		{"ada", models.RoleAdmin, true, true},
		{"eddie", models.RoleEditor, true, false},
		{"violet", models.RoleViewer, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.user), func(t *testing.T) {
			_, role, err := services.BoardRole(ctx, deps.Repo, b.ID, tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.role, role)

			_, err = services.ModifiableBoard(ctx, deps.Repo, b.ID, tt.user)
			if tt.modify {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, services.ErrAccessDenied)
			}

			_, _, err = services.AdminBoard(ctx, deps.Repo, b.ID, tt.user)
			if tt.admin {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, services.ErrAccessDenied)
			}

			_, err = services.OwnedBoard(ctx, deps.Repo, b.ID, tt.user)
			if tt.role == models.RoleOwner {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, services.ErrAccessDenied)
			}
		})
	}

	_, _, err := services.BoardRole(ctx, deps.Repo, b.ID, "mallory")
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}

func TestCheckLength(t *testing.T) {
	tooLong := errors.New("too long")

	assert.NoError(t, services.CheckLength("héllo", 5, tooLong), "length counts characters, not bytes")
	assert.ErrorIs(t, services.CheckLength("héllo!", 5, tooLong), tooLong)
	assert.NoError(t, services.CheckLength("anything", 0, tooLong), "zero disables the limit")
}
