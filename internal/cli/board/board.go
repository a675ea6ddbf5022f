package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
		Long: `Manage boards. Commands that take a <board> argument accept the
board's ID or its slug.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ArchiveCmd())
	cmd.AddCommand(StarCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(RepairCmd())
	cmd.AddCommand(WatchCmd())
	cmd.AddCommand(MemberCmd())

	return cmd
}
