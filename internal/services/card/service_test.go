package card

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/reorder"
	"github.com/thenoetrevino/boardly/internal/services"
	"github.com/thenoetrevino/boardly/internal/testutil"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

const owner types.UserID = "alice"

type fixture struct {
	svc   Service
	deps  *services.Deps
	board *models.Board
	todo  *models.List
	done  *models.List
}

func setup(t *testing.T) *fixture {
	t.Helper()
	deps := testutil.NewTestDeps(t)
	f := &fixture{svc: NewService(deps), deps: deps}
	f.board = f.addBoard(t, "Board")
	f.todo = f.addList(t, f.board.ID, "Todo", 0)
	f.done = f.addList(t, f.board.ID, "Done", 1)
	return f
}

func (f *fixture) addBoard(t *testing.T, title string) *models.Board {
	t.Helper()
	b := &models.Board{ID: types.NewBoardID(), OwnerID: owner, Title: title, Slug: strings.ToLower(title)}
	require.NoError(t, f.deps.Repo.CreateBoard(context.Background(), b))
	return b
}

func (f *fixture) addList(t *testing.T, boardID types.BoardID, title string, pos int) *models.List {
	t.Helper()
	l := &models.List{ID: types.NewListID(), BoardID: boardID, Title: title, Color: models.DefaultListColor, Position: pos}
	require.NoError(t, f.deps.Repo.CreateList(context.Background(), l))
	return l
}

func (f *fixture) addCards(t *testing.T, listID types.ListID, titles ...string) []*models.Card {
	t.Helper()
	out := make([]*models.Card, 0, len(titles))
	for _, title := range titles {
		c, err := f.svc.CreateCard(context.Background(), CreateCardRequest{UserID: owner, ListID: listID, Title: title})
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func (f *fixture) addLabel(t *testing.T, boardID types.BoardID, name string) *models.Label {
	t.Helper()
	l := &models.Label{ID: types.NewLabelID(), BoardID: boardID, Name: name, Color: "#00FF00"}
	require.NoError(t, f.deps.Repo.CreateLabel(context.Background(), l))
	return l
}

// titles returns the card titles of listID in order and checks density.
func (f *fixture) titles(t *testing.T, listID types.ListID) []string {
	t.Helper()
	cards, err := f.deps.Repo.CardsByList(context.Background(), listID)
	require.NoError(t, err)
	require.NoError(t, position.CheckDensity[types.ListID](cards))
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}

func at(p int) *int { return &p }

// ============================================================================
// CREATE / READ / UPDATE
// ============================================================================

func TestCreateCard(t *testing.T) {
	f := setup(t)
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	c, err := f.svc.CreateCard(context.Background(), CreateCardRequest{
		UserID:      owner,
		ListID:      f.todo.ID,
		Title:       " Ship it ",
		Description: "before friday",
		Priority:    "HIGH",
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ship it", c.Title)
	assert.Equal(t, models.PriorityHigh, c.Priority)
	assert.Equal(t, 0, c.Position)

	got, err := f.svc.GetCard(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "before friday", got.Description)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))

	f.addCards(t, f.todo.ID, "second", "third")
	assert.Equal(t, []string{"Ship it", "second", "third"}, f.titles(t, f.todo.ID))
}

func TestCreateCard_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateCardRequest
		want error
	}{
		{"empty title", CreateCardRequest{UserID: owner, ListID: f.todo.ID}, ErrEmptyTitle},
		{"title too long", CreateCardRequest{UserID: owner, ListID: f.todo.ID, Title: strings.Repeat("x", f.deps.Limits.MaxCardTitleLength+1)}, ErrTitleTooLong},
		{"description too long", CreateCardRequest{UserID: owner, ListID: f.todo.ID, Title: "ok", Description: strings.Repeat("x", f.deps.Limits.MaxDescriptionLength+1)}, ErrDescriptionTooLong},
		{"missing list", CreateCardRequest{UserID: owner, Title: "ok"}, ErrInvalidListID},
		{"bad priority", CreateCardRequest{UserID: owner, ListID: f.todo.ID, Title: "ok", Priority: "whenever"}, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateCard(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}

	_, err := f.svc.CreateCard(ctx, CreateCardRequest{UserID: owner, ListID: "missing", Title: "ok"})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCreateCard_ListFull(t *testing.T) {
	f := setup(t)
	f.deps.Limits.MaxCardsPerList = 2
	f.addCards(t, f.todo.ID, "a", "b")

	_, err := f.svc.CreateCard(context.Background(), CreateCardRequest{UserID: owner, ListID: f.todo.ID, Title: "c"})
	assert.ErrorIs(t, err, ErrListFull)
}

func TestUpdateCard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	c := f.addCards(t, f.todo.ID, "draft")[0]

	title := "final"
	done := true
	prio := models.PriorityUrgent
	due := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.UpdateCard(ctx, UpdateCardRequest{
		UserID: owner, ID: c.ID, Title: &title, Completed: &done, Priority: &prio, DueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.True(t, updated.Completed)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)
	require.NotNil(t, updated.DueDate)

	cleared, err := f.svc.UpdateCard(ctx, UpdateCardRequest{UserID: owner, ID: c.ID, ClearDueDate: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.DueDate)
	assert.Equal(t, 0, cleared.Position)

	_, err = f.svc.UpdateCard(ctx, UpdateCardRequest{UserID: owner, ID: c.ID})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, err = f.svc.UpdateCard(ctx, UpdateCardRequest{UserID: "bob", ID: c.ID, Title: &title})
	assert.ErrorIs(t, err, services.ErrAccessDenied)
}

// ============================================================================
// MOVE
// ============================================================================

func TestMoveCard_WithinList(t *testing.T) {
	f := setup(t)
	cards := f.addCards(t, f.todo.ID, "a", "b", "c", "d")

	res, err := f.svc.MoveCard(context.Background(), MoveCardRequest{UserID: owner, ID: cards[0].ID, Position: at(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Card.Position)
	assert.Len(t, res.Changes, 3)
	assert.Equal(t, []string{"b", "c", "a", "d"}, f.titles(t, f.todo.ID))
}

func TestMoveCard_AcrossLists(t *testing.T) {
	f := setup(t)
	src := f.addCards(t, f.todo.ID, "a", "b", "c")
	f.addCards(t, f.done.ID, "x", "y")

	res, err := f.svc.MoveCard(context.Background(), MoveCardRequest{
		UserID: owner, ID: src[1].ID, TargetListID: f.done.ID, Position: at(1),
	})
	require.NoError(t, err)

	assert.Equal(t, f.done.ID, res.Card.ListID)
	assert.Equal(t, 1, res.Card.Position)
	last := res.Changes[len(res.Changes)-1]
	assert.Equal(t, string(src[1].ID), last.ID)
	assert.True(t, last.Moved())

	assert.Equal(t, []string{"a", "c"}, f.titles(t, f.todo.ID))
	assert.Equal(t, []string{"x", "b", "y"}, f.titles(t, f.done.ID))
}

func TestMoveCard_AppendsWhenPositionOmitted(t *testing.T) {
	f := setup(t)
	src := f.addCards(t, f.todo.ID, "a", "b", "c")
	f.addCards(t, f.done.ID, "x")
	ctx := context.Background()

	_, err := f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: f.done.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a"}, f.titles(t, f.done.ID))

	_, err = f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[1].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, f.titles(t, f.todo.ID))
}

func TestMoveCard_IntoEmptyList(t *testing.T) {
	f := setup(t)
	src := f.addCards(t, f.todo.ID, "a")

	_, err := f.svc.MoveCard(context.Background(), MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: f.done.ID, Position: at(0)})
	require.NoError(t, err)

	assert.Empty(t, f.titles(t, f.todo.ID))
	assert.Equal(t, []string{"a"}, f.titles(t, f.done.ID))
}

func TestMoveCard_OutOfRange(t *testing.T) {
	f := setup(t)
	src := f.addCards(t, f.todo.ID, "a", "b")
	f.addCards(t, f.done.ID, "x")
	ctx := context.Background()

	tests := []struct {
		name   string
		target types.ListID
		pos    int
	}{
		{"within list at size", "", 2},
		{"within list negative", "", -1},
		{"across lists beyond size", f.done.ID, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: tt.target, Position: at(tt.pos)})
			assert.ErrorIs(t, err, position.ErrPositionOutOfRange)
		})
	}

	assert.Equal(t, []string{"a", "b"}, f.titles(t, f.todo.ID))
	assert.Equal(t, []string{"x"}, f.titles(t, f.done.ID))
}

func TestMoveCard_PolicyVetoes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	src := f.addCards(t, f.todo.ID, "a")

	other := f.addBoard(t, "Other")
	foreign := f.addList(t, other.ID, "Elsewhere", 0)

	_, err := f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: foreign.ID})
	assert.ErrorIs(t, err, ErrCrossBoardMove)
	var policyErr *reorder.PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, foreign.ID, policyErr.TargetListID)

	f.deps.Limits.MaxCardsPerList = 1
	f.addCards(t, f.done.ID, "x")
	_, err = f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: f.done.ID})
	assert.ErrorIs(t, err, ErrListFull)

	_, err = f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, TargetListID: "missing"})
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.Equal(t, []string{"a"}, f.titles(t, f.todo.ID))
}

func TestMoveCard_ArchivedBoardAndAccess(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	src := f.addCards(t, f.todo.ID, "a", "b")

	_, err := f.svc.MoveCard(ctx, MoveCardRequest{UserID: "bob", ID: src[0].ID, Position: at(1)})
	assert.ErrorIs(t, err, services.ErrAccessDenied)

	f.board.Archived = true
	require.NoError(t, f.deps.Repo.UpdateBoard(ctx, f.board))
	_, err = f.svc.MoveCard(ctx, MoveCardRequest{UserID: owner, ID: src[0].ID, Position: at(1)})
	assert.ErrorIs(t, err, services.ErrBoardArchived)
}

func TestMoveCard_DryRunWritesNothing(t *testing.T) {
	f := setup(t)
	src := f.addCards(t, f.todo.ID, "a", "b", "c")
	f.addCards(t, f.done.ID, "x")

	res, err := f.svc.MoveCard(context.Background(), MoveCardRequest{
		UserID: owner, ID: src[0].ID, TargetListID: f.done.ID, Position: at(0), DryRun: true,
	})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, f.done.ID, res.Card.ListID)
	assert.Len(t, res.Changes, 4, "b, c shift down, x shifts up, a moves")

	assert.Equal(t, []string{"a", "b", "c"}, f.titles(t, f.todo.ID))
	assert.Equal(t, []string{"x"}, f.titles(t, f.done.ID))
}

func TestMoveCard_ConcurrentMovesStayDense(t *testing.T) {
	f := setup(t)
	names := make([]string, 6)
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}
	cards := f.addCards(t, f.todo.ID, names...)
	lists := []types.ListID{f.todo.ID, f.done.ID}

	var wg sync.WaitGroup
	for w, c := range cards {
		wg.Add(1)
		go func(w int, id types.CardID) {
			defer wg.Done()
			for i := 0; i < 8; i++ {
				_, err := f.svc.MoveCard(context.Background(), MoveCardRequest{
					UserID: owner, ID: id, TargetListID: lists[(w+i)%2], Position: at(0),
				})
				assert.NoError(t, err)
			}
		}(w, c.ID)
	}
	wg.Wait()

	total := len(f.titles(t, f.todo.ID)) + len(f.titles(t, f.done.ID))
	assert.Equal(t, len(cards), total)
}

// ============================================================================
// DELETE / CLONE
// ============================================================================

func TestDeleteCard_Compacts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	cards := f.addCards(t, f.todo.ID, "a", "b", "c", "d")

	require.NoError(t, f.svc.DeleteCard(ctx, owner, cards[1].ID))
	assert.Equal(t, []string{"a", "c", "d"}, f.titles(t, f.todo.ID))

	_, err := f.svc.GetCard(ctx, cards[1].ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	assert.ErrorIs(t, f.svc.DeleteCard(ctx, "bob", cards[0].ID), services.ErrAccessDenied)
	assert.ErrorIs(t, f.svc.DeleteCard(ctx, owner, cards[1].ID), database.ErrNotFound)
}

func TestCloneCard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	original := f.addCards(t, f.todo.ID, "template")[0]
	bug := f.addLabel(t, f.board.ID, "bug")
	require.NoError(t, f.svc.AttachLabel(ctx, owner, original.ID, bug.ID))
	f.addCards(t, f.done.ID, "x")

	clone, err := f.svc.CloneCard(ctx, CloneCardRequest{UserID: owner, ID: original.ID, TargetListID: f.done.ID})
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, 1, clone.Position)
	assert.Equal(t, []string{"x", "template"}, f.titles(t, f.done.ID))

	labels, err := f.deps.Repo.LabelsForCard(ctx, clone.ID)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, bug.ID, labels[0].ID)

	same, err := f.svc.CloneCard(ctx, CloneCardRequest{UserID: owner, ID: original.ID})
	require.NoError(t, err)
	assert.Equal(t, f.todo.ID, same.ListID)
	assert.Equal(t, []string{"template", "template"}, f.titles(t, f.todo.ID))

	other := f.addBoard(t, "Other")
	foreign := f.addList(t, other.ID, "Elsewhere", 0)
	_, err = f.svc.CloneCard(ctx, CloneCardRequest{UserID: owner, ID: original.ID, TargetListID: foreign.ID})
	assert.ErrorIs(t, err, ErrCrossBoardMove)
	assert.Empty(t, f.titles(t, foreign.ID))
}

// ============================================================================
// LABELS
// ============================================================================

func TestAttachDetachLabel(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	c := f.addCards(t, f.todo.ID, "a")[0]
	bug := f.addLabel(t, f.board.ID, "bug")

	require.NoError(t, f.svc.AttachLabel(ctx, owner, c.ID, bug.ID))
	require.NoError(t, f.svc.AttachLabel(ctx, owner, c.ID, bug.ID), "attaching twice is a no-op")

	got, err := f.svc.GetCard(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Labels, 1)

	require.NoError(t, f.svc.DetachLabel(ctx, owner, c.ID, bug.ID))
	require.NoError(t, f.svc.DetachLabel(ctx, owner, c.ID, bug.ID))

	got, err = f.svc.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Labels)
}

func TestSetLabels(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	c := f.addCards(t, f.todo.ID, "a")[0]
	bug := f.addLabel(t, f.board.ID, "bug")
	ui := f.addLabel(t, f.board.ID, "ui")
	docs := f.addLabel(t, f.board.ID, "docs")

	labels, err := f.svc.SetLabels(ctx, owner, c.ID, []types.LabelID{bug.ID, ui.ID})
	require.NoError(t, err)
	assert.Len(t, labels, 2)

	labels, err = f.svc.SetLabels(ctx, owner, c.ID, []types.LabelID{ui.ID, docs.ID})
	require.NoError(t, err)
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	assert.ElementsMatch(t, []string{"ui", "docs"}, names)

	labels, err = f.svc.SetLabels(ctx, owner, c.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestSetLabels_RejectsForeignLabel(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	c := f.addCards(t, f.todo.ID, "a")[0]
	other := f.addBoard(t, "Other")
	foreign := f.addLabel(t, other.ID, "theirs")

	err := f.svc.AttachLabel(ctx, owner, c.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrLabelNotOnBoard)

	err = f.svc.AttachLabel(ctx, owner, c.ID, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCardsByList(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	cards := f.addCards(t, f.todo.ID, "a", "b")
	bug := f.addLabel(t, f.board.ID, "bug")
	require.NoError(t, f.svc.AttachLabel(ctx, owner, cards[1].ID, bug.ID))

	got, err := f.svc.CardsByList(ctx, f.todo.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Labels)
	assert.Len(t, got[1].Labels, 1)

	_, err = f.svc.CardsByList(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
