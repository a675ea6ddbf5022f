// Package cmd assembles the boardly command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli/board"
	"github.com/thenoetrevino/boardly/internal/cli/card"
	"github.com/thenoetrevino/boardly/internal/cli/label"
	"github.com/thenoetrevino/boardly/internal/cli/list"
	"github.com/thenoetrevino/boardly/internal/cli/setup"
)

// RootCmd returns the boardly root command with every command group added.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "boardly",
		Short: "Boardly - kanban boards from the command line",
		Long: `Boardly keeps boards, ordered lists and ordered cards in SQLite or
PostgreSQL. Every command supports --json for scripts and agents and
--quiet to print only IDs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(board.BoardCmd())
	root.AddCommand(list.ListCmd())
	root.AddCommand(card.CardCmd())
	root.AddCommand(label.LabelCmd())
	root.AddCommand(setup.ConfigCmd())

	return root
}

// Execute runs the command line with ctx.
func Execute(ctx context.Context) error {
	return RootCmd().ExecuteContext(ctx)
}
