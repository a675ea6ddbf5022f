package database

import (
	"context"
	"fmt"
)

type migration struct {
	version    string
	statements []string
}

// migrations are applied in order and recorded in schema_migrations. The DDL
// is restricted to what SQLite and PostgreSQL both accept.
var migrations = []migration{
	{
		version: "0001_core",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS boards (
				id TEXT PRIMARY KEY,
				owner_id TEXT NOT NULL,
				title TEXT NOT NULL,
				slug TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				archived BOOLEAN NOT NULL DEFAULT FALSE,
				starred BOOLEAN NOT NULL DEFAULT FALSE,
				version INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL,
				UNIQUE (owner_id, slug)
			)`,
			`CREATE TABLE IF NOT EXISTS lists (
				id TEXT PRIMARY KEY,
				board_id TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				color TEXT NOT NULL,
				position INTEGER NOT NULL,
				version INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_lists_board_position ON lists(board_id, position)`,
			`CREATE TABLE IF NOT EXISTS cards (
				id TEXT PRIMARY KEY,
				list_id TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				position INTEGER NOT NULL,
				priority TEXT NOT NULL DEFAULT '',
				completed BOOLEAN NOT NULL DEFAULT FALSE,
				due_date TIMESTAMP,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_cards_list_position ON cards(list_id, position)`,
		},
	},
	{
		version: "0002_labels",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS labels (
				id TEXT PRIMARY KEY,
				board_id TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				color TEXT NOT NULL,
				UNIQUE (board_id, name)
			)`,
			`CREATE TABLE IF NOT EXISTS card_labels (
				card_id TEXT NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
				label_id TEXT NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
				PRIMARY KEY (card_id, label_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_card_labels_label ON card_labels(label_id)`,
		},
	},
	{
		version: "0003_members",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS board_members (
				board_id TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
				user_id TEXT NOT NULL,
				role TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				PRIMARY KEY (board_id, user_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_board_members_user ON board_members(user_id)`,
		},
	},
}

// runMigrations applies every migration not yet recorded, each in its own
// transaction.
func runMigrations(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRowContext(ctx,
			db.Dialect.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`),
			m.version,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		err = withTx(ctx, db.DB, func(tx querier) error {
			for _, stmt := range m.statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("execute migration %s: %w", m.version, err)
				}
			}
			_, err := tx.ExecContext(ctx,
				db.Dialect.Rebind(`INSERT INTO schema_migrations (version) VALUES (?)`),
				m.version,
			)
			if err != nil {
				return fmt.Errorf("record migration %s: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
