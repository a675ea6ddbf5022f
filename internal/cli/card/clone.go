package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	"github.com/thenoetrevino/boardly/internal/types"
)

// CloneCmd returns the card clone subcommand
func CloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Copy a card to the end of a list",
		Long: `Copy a card, with its labels, to the end of a list on the same board.
The copy starts uncompleted.

Examples:
  boardly card clone --id=<card>
  boardly card clone --id=<card> --to=<list> --quiet
`,
		RunE: runClone,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cmd.Flags().String("to", "", "Target list ID (default: the card's list)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClone(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	to, _ := cmd.Flags().GetString("to")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		card, err := c.App.CardService.CloneCard(ctx, cardservice.CloneCardRequest{
			UserID:       c.UserID,
			ID:           types.CardID(id),
			TargetListID: types.ListID(to),
		})
		if err != nil {
			return err
		}

		return f.Emit("card", string(card.ID), card, func() {
			fmt.Printf("%s Card '%s' cloned (ID: %s)\n", styles.SuccessStyle.Render("✓"), card.Title, card.ID)
		})
	})
}
