package database

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a migrated in-memory SQLite database.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupPostgresDB opens a freshly reset PostgreSQL database, or skips.
func setupPostgresDB(t *testing.T) *DB {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("BOARDLY_TEST_PG_DSN"))
	if dsn == "" {
		t.Skip("BOARDLY_TEST_PG_DSN is not set")
	}

	ctx := context.Background()
	db, err := openPostgres(ctx, dsn)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`DROP TABLE IF EXISTS board_members, card_labels, labels, cards, lists, boards, schema_migrations CASCADE`)
	require.NoError(t, err)
	require.NoError(t, runMigrations(ctx, db))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// forEachDialect runs fn against SQLite, and against PostgreSQL when configured.
func forEachDialect(t *testing.T, fn func(t *testing.T, repo *Repository)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, NewRepository(setupTestDB(t)))
	})
	t.Run("postgres", func(t *testing.T) {
		fn(t, NewRepository(setupPostgresDB(t)))
	})
}

// ============================================================================
// FIXTURES
// ============================================================================

func createTestBoard(t *testing.T, repo *Repository, title string) *models.Board {
	t.Helper()
	b := &models.Board{
		ID:      types.NewBoardID(),
		OwnerID: "alice",
		Title:   title,
		Slug:    strings.ToLower(strings.ReplaceAll(title, " ", "-")),
	}
	require.NoError(t, repo.CreateBoard(context.Background(), b))
	return b
}

func createTestLists(t *testing.T, repo *Repository, boardID types.BoardID, n int) []*models.List {
	t.Helper()
	lists := make([]*models.List, n)
	for i := range lists {
		lists[i] = &models.List{
			ID:       types.NewListID(),
			BoardID:  boardID,
			Title:    "List",
			Color:    models.DefaultListColor,
			Position: i,
		}
		require.NoError(t, repo.CreateList(context.Background(), lists[i]))
	}
	return lists
}

func createTestCards(t *testing.T, repo *Repository, listID types.ListID, n int) []*models.Card {
	t.Helper()
	cards := make([]*models.Card, n)
	for i := range cards {
		cards[i] = &models.Card{
			ID:       types.NewCardID(),
			ListID:   listID,
			Title:    "Card",
			Position: i,
		}
		require.NoError(t, repo.CreateCard(context.Background(), cards[i]))
	}
	return cards
}
