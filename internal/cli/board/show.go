package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board>",
		Short: "Show a board with its lists and cards",
		Long: `Render a board as side-by-side lists.

Examples:
  boardly board show product-roadmap
  boardly board show 3f2a... --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		view, err := c.App.BoardService.GetBoardView(ctx, b.ID)
		if err != nil {
			return err
		}

		return f.Emit("board", string(b.ID), view, func() {
			header := styles.TitleStyle.Render(b.Title)
			if b.Archived {
				header += styles.SubtitleStyle.Render(" (archived)")
			}
			fmt.Println(header)
			if b.Description != "" {
				fmt.Println(styles.Markdown(b.Description, styles.DescriptionWidth))
			}

			columns := make([]string, 0, len(view.Lists))
			for _, lv := range view.Lists {
				columns = append(columns, styles.Column(lv.List, lv.Cards))
			}
			fmt.Println(styles.Board(columns))
		})
	})
}
