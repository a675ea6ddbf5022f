package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// RepairCmd returns the board repair subcommand
func RepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair <board>",
		Short: "Renumber list and card positions",
		Long: `Renumber the board's lists, and the cards of each list, to dense
positions while keeping their order. Use after importing data written by
other tools.

Examples:
  boardly board repair roadmap
`,
		Args: cobra.ExactArgs(1),
		RunE: runRepair,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRepair(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		moved, err := c.App.BoardService.Repair(ctx, c.UserID, b.ID)
		if err != nil {
			return err
		}

		return f.Emit("shifted", fmt.Sprint(moved), moved, func() {
			if moved == 0 {
				fmt.Printf("%s Board '%s' positions are already consistent\n", styles.SuccessStyle.Render("✓"), b.Title)
				return
			}
			fmt.Printf("%s Board '%s' repaired: %d positions rewritten\n", styles.WarningStyle.Render("!"), b.Title, moved)
		})
	})
}
