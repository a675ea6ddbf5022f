package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// ArchiveCmd returns the board archive subcommand
func ArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <board>",
		Short: "Archive or restore a board",
		Long: `Archive a board. Lists and cards on an archived board cannot be
changed until it is restored with --undo.

Examples:
  boardly board archive old-sprint
  boardly board archive old-sprint --undo
`,
		Args: cobra.ExactArgs(1),
		RunE: runArchive,
	}

	cmd.Flags().Bool("undo", false, "Restore an archived board")
	cli.AddOutputFlags(cmd)

	return cmd
}

// StarCmd returns the board star subcommand
func StarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "star <board>",
		Short: "Star or unstar a board",
		Long: `Star a board so it is listed first.

Examples:
  boardly board star roadmap
  boardly board star roadmap --undo
`,
		Args: cobra.ExactArgs(1),
		RunE: runStar,
	}

	cmd.Flags().Bool("undo", false, "Unstar the board")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	undo, _ := cmd.Flags().GetBool("undo")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		b, err = c.App.BoardService.SetArchived(ctx, c.UserID, b.ID, !undo)
		if err != nil {
			return err
		}

		verb := "archived"
		if undo {
			verb = "restored"
		}
		return f.Emit("board", string(b.ID), b, func() {
			fmt.Printf("%s Board '%s' %s\n", styles.SuccessStyle.Render("✓"), b.Title, verb)
		})
	})
}

func runStar(cmd *cobra.Command, args []string) error {
	undo, _ := cmd.Flags().GetBool("undo")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		b, err = c.App.BoardService.SetStarred(ctx, c.UserID, b.ID, !undo)
		if err != nil {
			return err
		}

		verb := "starred"
		if undo {
			verb = "unstarred"
		}
		return f.Emit("board", string(b.ID), b, func() {
			fmt.Printf("%s Board '%s' %s\n", styles.SuccessStyle.Render("✓"), b.Title, verb)
		})
	})
}
