package list

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the list parent command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage the lists of a board",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(LsCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
