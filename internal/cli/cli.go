// Package cli holds what every boardly command shares: the application
// context, output modes and error-to-exit-code mapping.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/app"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/testutil"
	"github.com/thenoetrevino/boardly/internal/types"
	"github.com/thenoetrevino/boardly/internal/user"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	UserID types.UserID
	owned  bool
}

type configKey struct{}

// WithConfig stores cfg in ctx for NewCLI.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the config of the app injected by tests, the
// config stored by WithConfig, or the config file's contents, in that order.
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok {
		return testApp.Config(), nil
	}
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// NewCLI opens the application from the config in ctx, or from the config
// file when ctx carries none.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	styles.Init(cfg.Theme)

	return &CLI{App: application, UserID: user.Current(), owned: true}, nil
}

// GetCLIFromContext returns a CLI around the app injected by tests, or opens
// a new one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok {
		styles.Init(testApp.Config().Theme)
		return &CLI{App: testApp, UserID: user.Current()}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected app is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// ResolveBoard finds one of the current user's boards by ID or slug.
func (c *CLI) ResolveBoard(ctx context.Context, ref string) (*models.Board, error) {
	return c.App.BoardService.ResolveBoard(ctx, c.UserID, ref)
}

// Run opens the CLI for cmd and calls fn. Errors fn returns are reported
// through the formatter and tagged with their exit code.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := NewFormatter(cmd)
	slog.Debug("running command", "command", cmd.CommandPath(), "flags", SetFlags(cmd.Flags()))

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := fn(ctx, cliInstance, formatter); err != nil {
		return Fail(formatter, err)
	}
	return nil
}

// MarkRequired marks flags as required, logging the programming error if
// one does not exist.
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
}
