package label

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/types"
)

// AttachCmd returns the label attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a label to a card",
		Long: `Attach a label to a card. The label must belong to the card's board.

Examples:
  boardly label attach --card=<card> --label=<label>
`,
		RunE: runAttach,
	}

	cmd.Flags().String("card", "", "Card ID (required)")
	cmd.Flags().String("label", "", "Label ID (required)")
	cli.MarkRequired(cmd, "card", "label")
	cli.AddOutputFlags(cmd)

	return cmd
}

// DetachCmd returns the label detach subcommand
func DetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Detach a label from a card",
		Long: `Detach a label from a card. Detaching a label the card does not have
succeeds without changes.

Examples:
  boardly label detach --card=<card> --label=<label>
`,
		RunE: runDetach,
	}

	cmd.Flags().String("card", "", "Card ID (required)")
	cmd.Flags().String("label", "", "Label ID (required)")
	cli.MarkRequired(cmd, "card", "label")
	cli.AddOutputFlags(cmd)

	return cmd
}

// SetCmd returns the label set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace all labels of a card",
		Long: `Replace a card's labels with exactly the given set. Pass no --label
to remove them all.

Examples:
  boardly label set --card=<card> --label=<bug> --label=<urgent>
  boardly label set --card=<card>
`,
		RunE: runSet,
	}

	cmd.Flags().String("card", "", "Card ID (required)")
	cmd.Flags().StringSlice("label", nil, "Label ID, repeatable")
	cli.MarkRequired(cmd, "card")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAttach(cmd *cobra.Command, args []string) error {
	cardID, _ := cmd.Flags().GetString("card")
	labelID, _ := cmd.Flags().GetString("label")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.CardService.AttachLabel(ctx, c.UserID, types.CardID(cardID), types.LabelID(labelID)); err != nil {
			return err
		}
		return f.Emit("", cardID, nil, func() {
			fmt.Printf("%s Label %s attached to card %s\n", styles.SuccessStyle.Render("✓"), labelID, cardID)
		})
	})
}

func runDetach(cmd *cobra.Command, args []string) error {
	cardID, _ := cmd.Flags().GetString("card")
	labelID, _ := cmd.Flags().GetString("label")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.CardService.DetachLabel(ctx, c.UserID, types.CardID(cardID), types.LabelID(labelID)); err != nil {
			return err
		}
		return f.Emit("", cardID, nil, func() {
			fmt.Printf("%s Label %s detached from card %s\n", styles.SuccessStyle.Render("✓"), labelID, cardID)
		})
	})
}

func runSet(cmd *cobra.Command, args []string) error {
	cardID, _ := cmd.Flags().GetString("card")
	raw, _ := cmd.Flags().GetStringSlice("label")

	labelIDs := make([]types.LabelID, len(raw))
	for i, id := range raw {
		labelIDs[i] = types.LabelID(id)
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		labels, err := c.App.CardService.SetLabels(ctx, c.UserID, types.CardID(cardID), labelIDs)
		if err != nil {
			return err
		}
		return f.Emit("labels", cardID, labels, func() {
			fmt.Printf("%s Card %s now has %d labels\n", styles.SuccessStyle.Render("✓"), cardID, len(labels))
			for _, l := range labels {
				fmt.Println("  " + styles.Badge(l))
			}
		})
	})
}
