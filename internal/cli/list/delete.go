package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/types"
)

// DeleteCmd returns the list delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a list and its cards",
		Long: `Delete a list together with its cards. The lists after it move up
one position. --force is required.

Examples:
  boardly list delete --id=<list> --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cmd.Flags().Bool("force", false, "Confirm the deletion")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("refusing to delete list %s without --force", id))
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		l, err := c.App.ListService.GetList(ctx, types.ListID(id))
		if err != nil {
			return err
		}
		if err := c.App.ListService.DeleteList(ctx, c.UserID, l.ID); err != nil {
			return err
		}

		return f.Emit("list_id", string(l.ID), l.ID, func() {
			fmt.Printf("%s List '%s' deleted\n", styles.SuccessStyle.Render("✓"), l.Title)
		})
	})
}
