package card

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a card's details",
		Long: `Show a card with its labels.

Examples:
  boardly card show --id=<card>
  boardly card show --id=<card> --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Card ID (required)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

// LsCmd returns the card ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show a list's cards in order",
		Long: `Show the cards of a list in position order.

Examples:
  boardly card ls --list=<list>
  boardly card ls --list=<list> --quiet
`,
		RunE: runLs,
	}

	cmd.Flags().String("list", "", "List ID (required)")
	cli.MarkRequired(cmd, "list")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		card, err := c.App.CardService.GetCard(ctx, types.CardID(id))
		if err != nil {
			return err
		}

		return f.Emit("card", string(card.ID), card, func() {
			fmt.Println(styles.Card(card))
			fmt.Printf("%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(string(card.ID)))
			fmt.Printf("%s %s\n", styles.LabelStyle.Render("List:"), styles.ValueStyle.Render(string(card.ListID)))
			fmt.Printf("%s %d\n", styles.LabelStyle.Render("Position:"), card.Position)
			if card.DueDate != nil {
				fmt.Printf("%s %s\n", styles.LabelStyle.Render("Due:"), styles.ValueStyle.Render(card.DueDate.Local().Format(time.DateOnly)))
			}
			if card.Description != "" {
				fmt.Println(styles.SectionStyle.Render("Description"))
				fmt.Println(styles.Markdown(card.Description, styles.DescriptionWidth))
			}
		})
	})
}

func runLs(cmd *cobra.Command, args []string) error {
	listID, _ := cmd.Flags().GetString("list")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		cards, err := c.App.CardService.CardsByList(ctx, types.ListID(listID))
		if err != nil {
			return err
		}

		if f.Quiet {
			for _, card := range cards {
				fmt.Println(card.ID)
			}
			return nil
		}

		return f.Emit("cards", "", cards, func() {
			if len(cards) == 0 {
				fmt.Println("No cards")
				return
			}
			for _, card := range cards {
				fmt.Printf("%s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%2d", card.Position)), styles.Card(card))
			}
		})
	})
}
