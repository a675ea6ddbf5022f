package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/models"
	cardservice "github.com/thenoetrevino/boardly/internal/services/card"
	"github.com/thenoetrevino/boardly/internal/types"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a card's fields",
		Long: `Change a card's title, description, priority, due date or completion.
Only the flags given are changed.

Examples:
  boardly card update --id=<card> --title="Fix login on Safari"
  boardly card update --id=<card> --completed
  boardly card update --id=<card> --clear-due --priority=urgent --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority: low, medium, high, urgent, or empty to clear")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().Bool("completed", false, "Mark completed (--completed=false reopens)")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	id, _ := flags.GetString("id")
	due, _ := flags.GetString("due")

	req := cardservice.UpdateCardRequest{
		ID:          types.CardID(id),
		Title:       cli.OptionalString(flags, "title"),
		Description: cli.OptionalString(flags, "description"),
		Completed:   cli.OptionalBool(flags, "completed"),
	}
	if raw := cli.OptionalString(flags, "priority"); raw != nil {
		p := models.Priority(*raw)
		req.Priority = &p
	}
	req.ClearDueDate, _ = flags.GetBool("clear-due")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if flags.Changed("due") {
			dueDate, err := parseDue(due)
			if err != nil {
				return err
			}
			req.DueDate = dueDate
		}
		req.UserID = c.UserID

		card, err := c.App.CardService.UpdateCard(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("card", string(card.ID), card, func() {
			fmt.Printf("%s Card updated: %s\n", styles.SuccessStyle.Render("✓"), styles.Card(card))
		})
	})
}
