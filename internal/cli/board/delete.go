package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board with all its lists, cards and labels",
		Long: `Delete a board permanently. --force is required.

Examples:
  boardly board delete old-sprint --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Confirm the deletion")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("refusing to delete board %s without --force", args[0]))
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		if err := c.App.BoardService.DeleteBoard(ctx, c.UserID, b.ID); err != nil {
			return err
		}

		return f.Emit("board_id", string(b.ID), b.ID, func() {
			fmt.Printf("%s Board '%s' deleted\n", styles.SuccessStyle.Render("✓"), b.Title)
		})
	})
}
