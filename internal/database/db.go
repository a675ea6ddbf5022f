// Package database persists boards, lists, cards and labels in SQLite or
// PostgreSQL and applies reorder write sets atomically.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour a connection speaks.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// Config selects the driver and data source.
type Config struct {
	Driver string // "sqlite" or "pgx"
	DSN    string // file path (or ":memory:") for sqlite, URL for pgx
}

// DB is a migrated connection pool together with its dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to the configured database, applies pragmas or pool
// settings for the driver and runs pending migrations.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	var (
		db  *DB
		err error
	)
	switch Dialect(cfg.Driver) {
	case DialectSQLite, "":
		db, err = openSQLite(ctx, cfg.DSN)
	case DialectPostgres:
		db, err = openPostgres(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db := &DB{DB: conn, Dialect: DialectSQLite}

	// One connection: every writer is serialized, and an in-memory database
	// stays the same database across calls.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p); err != nil {
			slog.Error("failed to apply pragma", "pragma", p, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

func openPostgres(ctx context.Context, url string) (*DB, error) {
	conn, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(20)

	db := &DB{DB: conn, Dialect: DialectPostgres}
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func closeQuietly(db *DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
