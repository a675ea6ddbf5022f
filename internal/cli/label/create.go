package label

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	labelservice "github.com/thenoetrevino/boardly/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a label on a board",
		Long: `Create a label. Names are unique per board, ignoring case.

Examples:
  boardly label create --board=roadmap --name=bug --color="#FF5733"
  LABEL_ID=$(boardly label create --board=roadmap --name=feature --color="#0079BF" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("board", "", "Board ID or slug (required)")
	cmd.Flags().String("name", "", "Label name (required)")
	cmd.Flags().String("color", "#7D56F4", "Label color as a hex code")
	cli.MarkRequired(cmd, "board", "name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, boardRef)
		if err != nil {
			return err
		}
		l, err := c.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{
			UserID:  c.UserID,
			BoardID: b.ID,
			Name:    name,
			Color:   color,
		})
		if err != nil {
			return err
		}

		return f.Emit("label", string(l.ID), l, func() {
			fmt.Printf("%s Label %s created (ID: %s)\n", styles.SuccessStyle.Render("✓"), styles.Badge(l), l.ID)
		})
	})
}
