package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
	"github.com/thenoetrevino/boardly/internal/types"
)

// MoveCmd returns the list move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a list to another position on its board",
		Long: `Move a list to a zero-based position on its board. The lists in
between shift by one to keep positions dense.

Examples:
  # Make a list the first one
  boardly list move --id=<list> --position=0

  # Show every position that changed
  boardly list move --id=<list> --position=2 --json
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cmd.Flags().Int("position", 0, "Target position, zero-based (required)")
	cli.MarkRequired(cmd, "id", "position")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	pos, _ := cmd.Flags().GetInt("position")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		res, err := c.App.ListService.MoveList(ctx, listservice.MoveListRequest{
			UserID:   c.UserID,
			ID:       types.ListID(id),
			Position: pos,
		})
		if err != nil {
			return err
		}

		return f.Emit("move", string(res.List.ID), res, func() {
			if len(res.Changes) == 0 {
				fmt.Printf("List '%s' is already at position %d\n", res.List.Title, res.List.Position)
				return
			}
			fmt.Printf("%s List '%s' moved to position %d (%d lists shifted)\n",
				styles.SuccessStyle.Render("✓"), res.List.Title, res.List.Position, len(res.Changes)-1)
		})
	})
}
