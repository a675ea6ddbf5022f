package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/types"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card. The cards after it move up one position.

Examples:
  boardly card delete --id=<card>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		cardID := types.CardID(id)
		if err := c.App.CardService.DeleteCard(ctx, c.UserID, cardID); err != nil {
			return err
		}

		return f.Emit("card_id", id, cardID, func() {
			fmt.Printf("%s Card %s deleted\n", styles.SuccessStyle.Render("✓"), id)
		})
	})
}
