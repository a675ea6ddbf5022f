package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a list to a board",
		Long: `Append a list to the end of a board.

Examples:
  boardly list create --board=roadmap --title="In Review"
  LIST_ID=$(boardly list create --board=roadmap --title=Done --color="#519839" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("board", "", "Board ID or slug (required)")
	cmd.Flags().String("title", "", "List title (required)")
	cmd.Flags().String("color", "", "List color as a hex code")
	cli.MarkRequired(cmd, "board", "title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	title, _ := cmd.Flags().GetString("title")
	color, _ := cmd.Flags().GetString("color")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, boardRef)
		if err != nil {
			return err
		}
		l, err := c.App.ListService.CreateList(ctx, listservice.CreateListRequest{
			UserID:  c.UserID,
			BoardID: b.ID,
			Title:   title,
			Color:   color,
		})
		if err != nil {
			return err
		}

		return f.Emit("list", string(l.ID), l, func() {
			fmt.Printf("%s List '%s' created at position %d (ID: %s)\n", styles.SuccessStyle.Render("✓"), l.Title, l.Position, l.ID)
		})
	})
}
