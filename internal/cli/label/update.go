package label

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	labelservice "github.com/thenoetrevino/boardly/internal/services/label"
	"github.com/thenoetrevino/boardly/internal/types"
)

// UpdateCmd returns the label update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename or recolor a label",
		Long: `Rename or recolor a label.

Examples:
  boardly label update --id=<label> --name=defect
  boardly label update --id=<label> --color="#B04632"
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New color as a hex code")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	req := labelservice.UpdateLabelRequest{
		ID:    types.LabelID(id),
		Name:  cli.OptionalString(cmd.Flags(), "name"),
		Color: cli.OptionalString(cmd.Flags(), "color"),
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req.UserID = c.UserID
		l, err := c.App.LabelService.UpdateLabel(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("label", string(l.ID), l, func() {
			fmt.Printf("%s Label %s updated\n", styles.SuccessStyle.Render("✓"), styles.Badge(l))
		})
	})
}
