package list

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/testutil"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

const owner types.UserID = "alice"

func setup(t *testing.T) (Service, *services.Deps, types.BoardID) {
	t.Helper()
	deps := testutil.NewTestDeps(t)
	b := &models.Board{ID: types.NewBoardID(), OwnerID: owner, Title: "Board", Slug: "board"}
	require.NoError(t, deps.Repo.CreateBoard(context.Background(), b))
	return NewService(deps), deps, b.ID
}

func createLists(t *testing.T, svc Service, boardID types.BoardID, titles ...string) []*models.List {
	t.Helper()
	out := make([]*models.List, 0, len(titles))
	for _, title := range titles {
		l, err := svc.CreateList(context.Background(), CreateListRequest{UserID: owner, BoardID: boardID, Title: title})
		require.NoError(t, err)
		out = append(out, l)
	}
	return out
}

func titles(t *testing.T, svc Service, boardID types.BoardID) []string {
	t.Helper()
	lists, err := svc.ListsByBoard(context.Background(), boardID)
	require.NoError(t, err)
	require.NoError(t, position.CheckDensity[types.BoardID](lists))
	out := make([]string, len(lists))
	for i, l := range lists {
		out[i] = l.Title
	}
	return out
}

// ============================================================================
// CREATE / UPDATE
// ============================================================================

func TestCreateList_AppendsAtEnd(t *testing.T) {
	svc, _, boardID := setup(t)

	lists := createLists(t, svc, boardID, "Todo", "Doing", "Done")

	for i, l := range lists {
		assert.Equal(t, i, l.Position)
		assert.Equal(t, models.DefaultListColor, l.Color)
	}
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, titles(t, svc, boardID))
}

func TestCreateList_Validation(t *testing.T) {
	svc, deps, boardID := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateListRequest
		want error
	}{
		{"empty title", CreateListRequest{UserID: owner, BoardID: boardID, Title: " "}, ErrEmptyTitle},
		{"title too long", CreateListRequest{UserID: owner, BoardID: boardID, Title: strings.Repeat("x", deps.Limits.MaxListTitleLength+1)}, ErrTitleTooLong},
		{"missing board", CreateListRequest{UserID: owner, Title: "ok"}, ErrInvalidBoardID},
		{"color outside palette", CreateListRequest{UserID: owner, BoardID: boardID, Title: "ok", Color: "#123456"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateList(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateList_Permissions(t *testing.T) {
	svc, deps, boardID := setup(t)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, CreateListRequest{UserID: "bob", BoardID: boardID, Title: "Nope"})
	assert.ErrorIs(t, err, services.ErrAccessDenied)

	b, err := deps.Repo.GetBoard(ctx, boardID)
	require.NoError(t, err)
	b.Archived = true
	require.NoError(t, deps.Repo.UpdateBoard(ctx, b))

	_, err = svc.CreateList(ctx, CreateListRequest{UserID: owner, BoardID: boardID, Title: "Nope"})
	assert.ErrorIs(t, err, services.ErrBoardArchived)
}

func TestCreateList_MemberRoles(t *testing.T) {
	svc, deps, boardID := setup(t)
	ctx := context.Background()
	require.NoError(t, deps.Repo.AddMember(ctx, &models.Member{BoardID: boardID, UserID: "eddie", Role: models.RoleEditor}))
	require.NoError(t, deps.Repo.AddMember(ctx, &models.Member{BoardID: boardID, UserID: "violet", Role: models.RoleViewer}))

	l, err := svc.CreateList(ctx, CreateListRequest{UserID: "eddie", BoardID: boardID, Title: "Shared"})
	require.NoError(t, err)
	assert.Equal(t, 0, l.Position)

	_, err = svc.CreateList(ctx, CreateListRequest{UserID: "violet", BoardID: boardID, Title: "Nope"})
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}

func TestCreateList_Limit(t *testing.T) {
	svc, deps, boardID := setup(t)
	deps.Limits.MaxListsPerBoard = 2
	createLists(t, svc, boardID, "A", "B")

	_, err := svc.CreateList(context.Background(), CreateListRequest{UserID: owner, BoardID: boardID, Title: "C"})
	assert.ErrorIs(t, err, ErrListLimitReached)
}

func TestUpdateList(t *testing.T) {
	svc, _, boardID := setup(t)
	ctx := context.Background()
	l := createLists(t, svc, boardID, "Todo")[0]

	title, color := "Backlog", "#d29034"
	updated, err := svc.UpdateList(ctx, UpdateListRequest{UserID: owner, ID: l.ID, Title: &title, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", updated.Title)
	assert.Equal(t, "#D29034", updated.Color)
	assert.Equal(t, 0, updated.Position)

	bad := "#000001"
	_, err = svc.UpdateList(ctx, UpdateListRequest{UserID: owner, ID: l.ID, Color: &bad})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

// ============================================================================
// MOVE / DELETE
// ============================================================================

func TestMoveList(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		want    []string
		changes int
	}{
		{"forward", 0, 2, []string{"B", "C", "A", "D"}, 3},
		{"backward", 3, 1, []string{"A", "D", "B", "C"}, 3},
		{"to end", 1, 3, []string{"A", "C", "D", "B"}, 3},
		{"no-op", 2, 2, []string{"A", "B", "C", "D"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, boardID := setup(t)
			lists := createLists(t, svc, boardID, "A", "B", "C", "D")

			res, err := svc.MoveList(context.Background(), MoveListRequest{UserID: owner, ID: lists[tt.from].ID, Position: tt.to})
			require.NoError(t, err)
			assert.Equal(t, tt.to, res.List.Position)
			assert.Len(t, res.Changes, tt.changes)
			assert.Equal(t, tt.want, titles(t, svc, boardID))
		})
	}
}

func TestMoveList_OutOfRange(t *testing.T) {
	svc, _, boardID := setup(t)
	lists := createLists(t, svc, boardID, "A", "B", "C")

	for _, pos := range []int{-1, 3, 10} {
		_, err := svc.MoveList(context.Background(), MoveListRequest{UserID: owner, ID: lists[0].ID, Position: pos})
		assert.ErrorIs(t, err, position.ErrPositionOutOfRange, "position %d", pos)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles(t, svc, boardID))
}

func TestMoveList_NotOwner(t *testing.T) {
	svc, _, boardID := setup(t)
	lists := createLists(t, svc, boardID, "A", "B")

	_, err := svc.MoveList(context.Background(), MoveListRequest{UserID: "bob", ID: lists[0].ID, Position: 1})
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}

func TestDeleteList_Compacts(t *testing.T) {
	svc, deps, boardID := setup(t)
	ctx := context.Background()
	lists := createLists(t, svc, boardID, "A", "B", "C", "D")
	require.NoError(t, deps.Repo.CreateCard(ctx, &models.Card{ID: types.NewCardID(), ListID: lists[1].ID, Title: "gone"}))

	require.NoError(t, svc.DeleteList(ctx, owner, lists[1].ID))

	assert.Equal(t, []string{"A", "C", "D"}, titles(t, svc, boardID))
	_, err := svc.GetList(ctx, lists[1].ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
	cards, err := deps.Repo.CardsByList(ctx, lists[1].ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestDeleteList_Last(t *testing.T) {
	svc, _, boardID := setup(t)
	l := createLists(t, svc, boardID, "Only")[0]

	require.NoError(t, svc.DeleteList(context.Background(), owner, l.ID))
	assert.Empty(t, titles(t, svc, boardID))
}

func TestMoveList_ConcurrentMovesStayDense(t *testing.T) {
	svc, _, boardID := setup(t)
	names := make([]string, 8)
	for i := range names {
		names[i] = fmt.Sprintf("L%d", i)
	}
	lists := createLists(t, svc, boardID, names...)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				id := lists[(w*3+i)%len(lists)].ID
				_, err := svc.MoveList(context.Background(), MoveListRequest{UserID: owner, ID: id, Position: (w + i) % len(lists)})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, titles(t, svc, boardID), len(lists))
}
