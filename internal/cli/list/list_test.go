package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/testutil/cli"
)

func TestCreateList(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	cli.CreateTestLists(t, app, b.ID, "Todo")

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"--board", "roadmap", "--title", "Done", "--color", "#519839", "--json"})
	require.NoError(t, err)

	list := cli.ParseJSON(t, output)["list"].(map[string]any)
	assert.Equal(t, "Done", list["title"])
	assert.Equal(t, float64(1), list["position"], "new lists are appended")
	assert.Equal(t, "#519839", list["color"])
}

func TestCreateList_Errors(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestBoard(t, app, "Roadmap")

	tests := []struct {
		name string
		args []string
		exit int
	}{
		{"unknown board", []string{"--board", "missing", "--title", "x"}, clipkg.ExitNotFound},
		{"empty title", []string{"--board", "roadmap", "--title", ""}, clipkg.ExitValidation},
		{"bad color", []string{"--board", "roadmap", "--title", "x", "--color", "red"}, clipkg.ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exit, clipkg.ExitCode(err))
		})
	}
}

func TestLsLists(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	lists := cli.CreateTestLists(t, app, b.ID, "Todo", "Doing", "Done")

	output, err := cli.ExecuteCLICommand(t, app, LsCmd(), []string{"--board", "roadmap", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, string(lists[0].ID)+"\n"+string(lists[1].ID)+"\n"+string(lists[2].ID)+"\n", output)
}

func TestUpdateList(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	l := cli.CreateTestLists(t, app, b.ID, "Todo")[0]

	output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(l.ID), "--title", "Backlog"})
	require.NoError(t, err)
	assert.Contains(t, output, "List 'Backlog' updated")

	_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", string(l.ID)})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}

func TestMoveList(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	lists := cli.CreateTestLists(t, app, b.ID, "A", "B", "C", "D")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(lists[3].ID), "--position", "1", "--json"})
	require.NoError(t, err)

	move := cli.ParseJSON(t, output)["move"].(map[string]any)
	assert.Len(t, move["changes"].([]any), 3)

	got, err := app.ListService.ListsByBoard(context.Background(), b.ID)
	require.NoError(t, err)
	titles := make([]string, len(got))
	for i, l := range got {
		titles[i] = l.Title
		assert.Equal(t, i, l.Position)
	}
	assert.Equal(t, []string{"A", "D", "B", "C"}, titles)
}

func TestMoveList_OutOfRange(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	lists := cli.CreateTestLists(t, app, b.ID, "A", "B")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", string(lists[0].ID), "--position", "2", "--json"})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	assert.Equal(t, false, cli.ParseJSON(t, output)["success"])
}

func TestDeleteList(t *testing.T) {
	app := cli.SetupCLITest(t)
	b := cli.CreateTestBoard(t, app, "Roadmap")
	lists := cli.CreateTestLists(t, app, b.ID, "A", "B", "C")

	_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", string(lists[0].ID)})
	require.Error(t, err, "--force is required")

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", string(lists[0].ID), "--force"})
	require.NoError(t, err)

	got, err := app.ListService.ListsByBoard(context.Background(), b.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, 1, got[1].Position)
}
