package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boardly/internal/app"
	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/models"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	labelservice "github.com/thenoetrevino/boardly/internal/services/label"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
	"github.com/thenoetrevino/boardly/internal/testutil"
	"github.com/thenoetrevino/boardly/internal/types"
)

// TestUser is the user commands run as.
const TestUser types.UserID = "alice"

// SetupCLITest creates an app over a fresh in-memory database and makes
// TestUser the current user.
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	t.Setenv("BOARDLY_USER", string(TestUser))
	return app.New(database.NewRepository(testutil.SetupTestDB(t)), config.Default())
}

// SetupCLITestWithRedis opens an app the way the binary does, with locks and
// events going through the Redis server at addr.
func SetupCLITestWithRedis(t *testing.T, addr string) *app.App {
	t.Helper()
	t.Setenv("BOARDLY_USER", string(TestUser))

	cfg := config.Default()
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}
	cfg.Redis.URL = "redis://" + addr

	a, err := app.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestBoard creates a board owned by TestUser.
func CreateTestBoard(t *testing.T, a *app.App, title string) *models.Board {
	t.Helper()
	b, err := a.BoardService.CreateBoard(context.Background(), boardservice.CreateBoardRequest{OwnerID: TestUser, Title: title})
	require.NoError(t, err)
	return b
}

// CreateTestLists appends lists with the given titles to a board.
func CreateTestLists(t *testing.T, a *app.App, boardID types.BoardID, titles ...string) []*models.List {
	t.Helper()
	out := make([]*models.List, 0, len(titles))
	for _, title := range titles {
		l, err := a.ListService.CreateList(context.Background(), listservice.CreateListRequest{UserID: TestUser, BoardID: boardID, Title: title})
		require.NoError(t, err)
		out = append(out, l)
	}
	return out
}

// CreateTestCards appends cards with the given titles to a list.
func CreateTestCards(t *testing.T, a *app.App, listID types.ListID, titles ...string) []*models.Card {
	t.Helper()
	out := make([]*models.Card, 0, len(titles))
	for _, title := range titles {
		c, err := a.CardService.CreateCard(context.Background(), cardservice.CreateCardRequest{UserID: TestUser, ListID: listID, Title: title})
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

// CreateTestLabel creates a label on a board.
func CreateTestLabel(t *testing.T, a *app.App, boardID types.BoardID, name, color string) *models.Label {
	t.Helper()
	l, err := a.LabelService.CreateLabel(context.Background(), labelservice.CreateLabelRequest{UserID: TestUser, BoardID: boardID, Name: name, Color: color})
	require.NoError(t, err)
	return l
}

// CardTitles returns the titles of a list's cards in position order.
func CardTitles(t *testing.T, a *app.App, listID types.ListID) []string {
	t.Helper()
	cards, err := a.CardService.CardsByList(context.Background(), listID)
	require.NoError(t, err)
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}
