package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/boardly/internal/cli"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	"github.com/thenoetrevino/boardly/internal/testutil/cli"
)

func ptr[T any](v T) *T { return &v }

func TestParseDue(t *testing.T) {
	got, err := parseDue("2026-11-01")
	require.NoError(t, err)
	local := time.Date(2026, 11, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, got.Equal(local))

	got, err = parseDue("2026-11-01T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Hour())

	_, err = parseDue("next tuesday")
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
}

func TestCreateCard(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]
	cli.CreateTestCards(t, app, todo.ID, "First")

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--list", string(todo.ID),
		"--title", "Ship it",
		"--priority", "HIGH",
		"--due", "2026-11-01",
		"--json",
	})
	require.NoError(t, err)

	card := cli.ParseJSON(t, output)["card"].(map[string]any)
	assert.Equal(t, "Ship it", card["title"])
	assert.Equal(t, float64(1), card["position"])
	assert.Equal(t, "high", card["priority"])
	assert.NotEmpty(t, card["due_date"])
}

func TestCreateCard_Errors(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]

	tests := []struct {
		name string
		args []string
		exit int
	}{
		{"unknown list", []string{"--list", "missing", "--title", "x"}, clipkg.ExitNotFound},
		{"bad priority", []string{"--list", string(todo.ID), "--title", "x", "--priority", "meh"}, clipkg.ExitValidation},
		{"bad due date", []string{"--list", string(todo.ID), "--title", "x", "--due", "soon"}, clipkg.ExitDataErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exit, clipkg.ExitCode(err))
		})
	}
	assert.Empty(t, cli.CardTitles(t, app, todo.ID))
}

func TestShowAndLsCards(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]
	cards := cli.CreateTestCards(t, app, todo.ID, "One", "Two")

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", string(cards[1].ID)})
	require.NoError(t, err)
	assert.Contains(t, output, "Two")
	assert.Contains(t, output, string(cards[1].ID))

	_, err = app.CardService.UpdateCard(context.Background(), cardservice.UpdateCardRequest{UserID: cli.TestUser, ID: cards[0].ID, Description: ptr("Steps:\n\n- **reproduce**\n- fix")})
	require.NoError(t, err)
	output, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", string(cards[0].ID)})
	require.NoError(t, err)
	assert.Contains(t, output, "reproduce")

	output, err = cli.ExecuteCLICommand(t, app, LsCmd(), []string{"--list", string(todo.ID), "--json"})
	require.NoError(t, err)
	assert.Len(t, cli.ParseJSON(t, output)["cards"].([]any), 2)
}

func TestUpdateCard(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]
	card := cli.CreateTestCards(t, app, todo.ID, "Draft")[0]

	_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(card.ID), "--title", "Final", "--completed", "--due", "2026-12-24"})
	require.NoError(t, err)

	got, err := app.CardService.GetCard(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.True(t, got.Completed)
	require.NotNil(t, got.DueDate)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(card.ID), "--clear-due", "--completed=false"})
	require.NoError(t, err)
	got, err = app.CardService.GetCard(context.Background(), card.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.DueDate)

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(card.ID)})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestMoveCard_WithinList(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]
	cards := cli.CreateTestCards(t, app, todo.ID, "A", "B", "C")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(cards[2].ID), "--position", "0"})
	require.NoError(t, err)
	assert.Contains(t, output, "moved to position 0")
	assert.Equal(t, []string{"C", "A", "B"}, cli.CardTitles(t, app, todo.ID))
}

func TestMoveCard_AcrossLists(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	lists := cli.CreateTestLists(t, app, b.ID, "Todo", "Done")
	cards := cli.CreateTestCards(t, app, lists[0].ID, "A", "B", "C")
	cli.CreateTestCards(t, app, lists[1].ID, "X")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(cards[0].ID), "--to", string(lists[1].ID), "--json"})
	require.NoError(t, err)

	move := cli.ParseJSON(t, output)["move"].(map[string]any)
	assert.Equal(t, false, move["dry_run"])
	assert.Equal(t, float64(1), move["card"].(map[string]any)["position"], "no --position appends")

	assert.Equal(t, []string{"B", "C"}, cli.CardTitles(t, app, lists[0].ID))
	assert.Equal(t, []string{"X", "A"}, cli.CardTitles(t, app, lists[1].ID))
}

func TestMoveCard_DryRun(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	lists := cli.CreateTestLists(t, app, b.ID, "Todo", "Done")
	cards := cli.CreateTestCards(t, app, lists[0].ID, "A", "B")
	cli.CreateTestCards(t, app, lists[1].ID, "X")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(cards[0].ID), "--to", string(lists[1].ID), "--position", "0", "--dry-run"})
	require.NoError(t, err)
	assert.Contains(t, output, "not applied")
	assert.Contains(t, output, "PrevContainer")

	assert.Equal(t, []string{"A", "B"}, cli.CardTitles(t, app, lists[0].ID))
	assert.Equal(t, []string{"X"}, cli.CardTitles(t, app, lists[1].ID))
}

func TestMoveCard_OutOfRange(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	todo := cli.CreateTestLists(t, app, b.ID, "Todo")[0]
	cards := cli.CreateTestCards(t, app, todo.ID, "A", "B")

	_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(cards[0].ID), "--position", "5"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	assert.Equal(t, []string{"A", "B"}, cli.CardTitles(t, app, todo.ID))
}

func TestCloneAndDeleteCard(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Sprint")
	lists := cli.CreateTestLists(t, app, b.ID, "Todo", "Done")
	cards := cli.CreateTestCards(t, app, lists[0].ID, "A", "B")

	output, err := cli.ExecuteCLICommand(t, app, CloneCmd(), []string{"--id", string(cards[0].ID), "--to", string(lists[1].ID), "--quiet"})
	require.NoError(t, err)
	assert.NotEmpty(t, output)
	assert.Equal(t, []string{"A"}, cli.CardTitles(t, app, lists[1].ID))

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", string(cards[0].ID)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, cli.CardTitles(t, app, lists[0].ID))

	remaining, err := app.CardService.CardsByList(context.Background(), lists[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining[0].Position)
}
