package label

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/models"
	"github.com/thenoetrevino/boardly/internal/types"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the labels of a board or a card",
		Long: `List a board's labels, or the labels attached to one card.

Examples:
  boardly label list --board=roadmap
  boardly label list --card=<card> --json
`,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board ID or slug")
	cmd.Flags().String("card", "", "Card ID")
	cmd.MarkFlagsOneRequired("board", "card")
	cmd.MarkFlagsMutuallyExclusive("board", "card")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	cardID, _ := cmd.Flags().GetString("card")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		var (
			labels []*models.Label
			err    error
		)
		if cardID != "" {
			labels, err = c.App.LabelService.LabelsForCard(ctx, types.CardID(cardID))
		} else {
			var b *models.Board
			if b, err = c.ResolveBoard(ctx, boardRef); err != nil {
				return err
			}
			labels, err = c.App.LabelService.LabelsByBoard(ctx, b.ID)
		}
		if err != nil {
			return err
		}

		if f.Quiet {
			for _, l := range labels {
				fmt.Println(l.ID)
			}
			return nil
		}

		return f.Emit("labels", "", labels, func() {
			if len(labels) == 0 {
				fmt.Println("No labels found")
				return
			}
			for _, l := range labels {
				fmt.Printf("%s  %s\n", styles.Badge(l), styles.SubtitleStyle.Render(string(l.ID)))
			}
		})
	})
}
