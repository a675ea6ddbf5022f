package label

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/types"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a label and detach it from every card",
		Long: `Delete a label. It is removed from every card that had it.

Examples:
  boardly label delete --id=<label>
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		labelID := types.LabelID(id)
		if err := c.App.LabelService.DeleteLabel(ctx, c.UserID, labelID); err != nil {
			return err
		}

		return f.Emit("label_id", id, labelID, func() {
			fmt.Printf("%s Label %s deleted\n", styles.SuccessStyle.Render("✓"), id)
		})
	})
}
