package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board owned by the current user.

Examples:
  # Create a board (human-readable output)
  boardly board create --title="Product Roadmap"

  # JSON output for agents
  boardly board create --title="Product Roadmap" --description="Q3" --json

  # Quiet mode for bash capture
  BOARD_ID=$(boardly board create --title="Sprint 12" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Board title (required)")
	cmd.Flags().String("description", "", "Board description")
	cli.MarkRequired(cmd, "title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
			OwnerID:     c.UserID,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return err
		}

		return f.Emit("board", string(b.ID), b, func() {
			fmt.Printf("%s Board '%s' created (ID: %s)\n", styles.SuccessStyle.Render("✓"), b.Title, b.ID)
			fmt.Printf("  Slug: %s\n", b.Slug)
		})
	})
}
