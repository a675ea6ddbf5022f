package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <board>",
		Short: "Change a board's title or description",
		Long: `Change a board's title or description. A new title gives the board a
new slug.

Examples:
  boardly board update roadmap --title="Roadmap 2027"
  boardly board update roadmap --description="" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := boardservice.UpdateBoardRequest{
		Title:       cli.OptionalString(cmd.Flags(), "title"),
		Description: cli.OptionalString(cmd.Flags(), "description"),
	}
	if req.Title == nil && req.Description == nil {
		return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("at least one of --title or --description is required"))
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		req.UserID, req.ID = c.UserID, b.ID

		updated, err := c.App.BoardService.UpdateBoard(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("board", string(updated.ID), updated, func() {
			fmt.Printf("%s Board '%s' updated (slug: %s)\n", styles.SuccessStyle.Render("✓"), updated.Title, updated.Slug)
		})
	})
}
