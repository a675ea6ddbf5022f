package card

import (
	"context"
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	"github.com/thenoetrevino/boardly/internal/types"
)

var dumper = litter.Options{StripPackageNames: true, HidePrivateFields: true}

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card within its list or to another list",
		Long: `Move a card to a zero-based position, in its own list or in the list
given by --to. Without --position the card goes to the end. Cards in both
lists shift to keep positions dense.

Examples:
  # Reorder within the list
  boardly card move --id=<card> --position=0

  # Move to the end of another list
  boardly card move --id=<card> --to=<list>

  # See what would change without writing anything
  boardly card move --id=<card> --to=<list> --position=2 --dry-run
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cmd.Flags().String("to", "", "Target list ID (default: the card's list)")
	cmd.Flags().Int("position", 0, "Target position, zero-based (default: end of list)")
	cmd.Flags().Bool("dry-run", false, "Print the position changes without applying them")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	to, _ := cmd.Flags().GetString("to")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	req := cardservice.MoveCardRequest{
		ID:           types.CardID(id),
		TargetListID: types.ListID(to),
		DryRun:       dryRun,
	}
	if cmd.Flags().Changed("position") {
		pos, _ := cmd.Flags().GetInt("position")
		req.Position = &pos
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req.UserID = c.UserID
		res, err := c.App.CardService.MoveCard(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("move", string(res.Card.ID), res, func() {
			switch {
			case res.DryRun:
				fmt.Printf("%s %d position changes (not applied):\n", styles.WarningStyle.Render("dry run:"), len(res.Changes))
				fmt.Println(dumper.Sdump(res.Changes))
			case len(res.Changes) == 0:
				fmt.Printf("Card '%s' is already at position %d\n", res.Card.Title, res.Card.Position)
			default:
				fmt.Printf("%s Card '%s' moved to position %d of list %s\n",
					styles.SuccessStyle.Render("✓"), res.Card.Title, res.Card.Position, res.Card.ListID)
			}
		})
	})
}
