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

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a card to a list",
		Long: `Append a card to the end of a list.

Examples:
  boardly card create --list=<list> --title="Fix login"
  boardly card create --list=<list> --title="Ship it" --priority=high --due=2026-11-01 --json
  CARD_ID=$(boardly card create --list=<list> --title="Write docs" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("list", "", "List ID (required)")
	cmd.Flags().String("title", "", "Card title (required)")
	cmd.Flags().String("description", "", "Card description")
	cmd.Flags().String("priority", "", "Priority: low, medium, high or urgent")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cli.MarkRequired(cmd, "list", "title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	listID, _ := cmd.Flags().GetString("list")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	priority, _ := cmd.Flags().GetString("priority")
	due, _ := cmd.Flags().GetString("due")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req := cardservice.CreateCardRequest{
			UserID:      c.UserID,
			ListID:      types.ListID(listID),
			Title:       title,
			Description: description,
			Priority:    models.Priority(priority),
		}
		if due != "" {
			dueDate, err := parseDue(due)
			if err != nil {
				return err
			}
			req.DueDate = dueDate
		}

		card, err := c.App.CardService.CreateCard(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("card", string(card.ID), card, func() {
			fmt.Printf("%s Card '%s' created at position %d (ID: %s)\n", styles.SuccessStyle.Render("✓"), card.Title, card.Position, card.ID)
		})
	})
}
