package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// LsCmd returns the list ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show a board's lists in order",
		Long: `Show a board's lists in position order.

Examples:
  boardly list ls --board=roadmap
  boardly list ls --board=roadmap --json
`,
		RunE: runLs,
	}

	cmd.Flags().String("board", "", "Board ID or slug (required)")
	cli.MarkRequired(cmd, "board")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, boardRef)
		if err != nil {
			return err
		}
		lists, err := c.App.ListService.ListsByBoard(ctx, b.ID)
		if err != nil {
			return err
		}

		if f.Quiet {
			for _, l := range lists {
				fmt.Println(l.ID)
			}
			return nil
		}

		return f.Emit("lists", "", lists, func() {
			if len(lists) == 0 {
				fmt.Printf("Board '%s' has no lists\n", b.Title)
				return
			}
			for _, l := range lists {
				fmt.Printf("%s %s  %s\n",
					styles.LabelStyle.Render(fmt.Sprintf("%2d", l.Position)),
					styles.TitleStyle.Render(l.Title),
					styles.SubtitleStyle.Render(string(l.ID)))
			}
		})
	})
}
