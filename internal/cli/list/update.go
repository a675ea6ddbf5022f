package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	listservice "github.com/thenoetrevino/boardly/internal/services/list"
	"github.com/thenoetrevino/boardly/internal/types"
)

// UpdateCmd returns the list update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename or recolor a list",
		Long: `Rename or recolor a list.

Examples:
  boardly list update --id=<list> --title="Doing"
  boardly list update --id=<list> --color="#B04632" --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("color", "", "New color as a hex code")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	req := listservice.UpdateListRequest{
		ID:    types.ListID(id),
		Title: cli.OptionalString(cmd.Flags(), "title"),
		Color: cli.OptionalString(cmd.Flags(), "color"),
	}
	if req.Title == nil && req.Color == nil {
		return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("at least one of --title or --color is required"))
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req.UserID = c.UserID
		l, err := c.App.ListService.UpdateList(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("list", string(l.ID), l, func() {
			fmt.Printf("%s List '%s' updated\n", styles.SuccessStyle.Render("✓"), l.Title)
		})
	})
}
