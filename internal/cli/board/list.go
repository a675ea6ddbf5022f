package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your boards",
		Long: `List the boards the current user owns or is a member of, starred
boards first.

Examples:
  boardly board list
  boardly board list --archived --json
`,
		RunE: runList,
	}

	cmd.Flags().Bool("archived", false, "Include archived boards")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	archived, _ := cmd.Flags().GetBool("archived")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		boards, err := c.App.BoardService.ListBoards(ctx, c.UserID, archived)
		if err != nil {
			return err
		}

		if f.Quiet {
			for _, b := range boards {
				fmt.Println(b.ID)
			}
			return nil
		}

		return f.Emit("boards", "", boards, func() {
			if len(boards) == 0 {
				fmt.Println("No boards found")
				return
			}
			for _, b := range boards {
				marker := " "
				if b.Starred {
					marker = styles.WarningStyle.Render("★")
				}
				line := fmt.Sprintf("%s %s  %s", marker, styles.TitleStyle.Render(b.Title), styles.SubtitleStyle.Render(b.Slug))
				if b.OwnerID != c.UserID {
					line += styles.SubtitleStyle.Render(" (shared by " + string(b.OwnerID) + ")")
				}
				if b.Archived {
					line += styles.SubtitleStyle.Render(" (archived)")
				}
				fmt.Println(line)
			}
		})
	})
}
