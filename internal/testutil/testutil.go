// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/database"
	"github.com/thenoetrevino/boardly/internal/locker"
	"github.com/thenoetrevino/boardly/internal/services"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Restore stdout even if fn fails the test via runtime.Goexit.
	defer func() {
		_ = w.Close()
		os.Stdout = oldStdout
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-outC
}

// SetupTestDB creates a migrated in-memory SQLite database
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewTestDeps returns service dependencies over a fresh in-memory database,
// an in-process locker, no event publisher and default limits.
func NewTestDeps(t *testing.T) *services.Deps {
	t.Helper()
	cfg := config.Default()
	return &services.Deps{
		Repo:    database.NewRepository(SetupTestDB(t)),
		Locker:  locker.NewMemoryLocker(),
		Limits:  cfg.Limits,
		Reorder: cfg.Reorder,
	}
}
