package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/models"
	boardservice "github.com/thenoetrevino/boardly/internal/services/board"
	"github.com/thenoetrevino/boardly/internal/types"
)

// MemberCmd returns the board member parent command
func MemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Share a board with other users",
		Long: `Manage who may see and change a board.

Roles:
  admin   change board settings and members (only the owner grants it)
  editor  create, change and move lists, cards and labels
  viewer  read only`,
	}

	cmd.AddCommand(memberAddCmd())
	cmd.AddCommand(memberListCmd())
	cmd.AddCommand(memberRoleCmd())
	cmd.AddCommand(memberRemoveCmd())

	return cmd
}

func memberAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <board>",
		Short: "Add a member",
		Long: `Give another user a role on a board.

Examples:
  boardly board member add roadmap --user bob
  boardly board member add roadmap --user carol --role viewer
`,
		Args: cobra.ExactArgs(1),
		RunE: runMemberAdd,
	}

	cmd.Flags().String("user", "", "User to add (required)")
	cmd.Flags().String("role", string(models.RoleEditor), "Role: admin, editor or viewer")
	_ = cmd.MarkFlagRequired("user")
	cli.AddOutputFlags(cmd)

	return cmd
}

func memberListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <board>",
		Aliases: []string{"ls"},
		Short:   "List members",
		Args:    cobra.ExactArgs(1),
		RunE:    runMemberList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func memberRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role <board>",
		Short: "Change a member's role",
		Long: `Change a member's role.

Examples:
  boardly board member role roadmap --user bob --role viewer
`,
		Args: cobra.ExactArgs(1),
		RunE: runMemberRole,
	}

	cmd.Flags().String("user", "", "Member to change (required)")
	cmd.Flags().String("role", "", "New role: admin, editor or viewer (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")
	cli.AddOutputFlags(cmd)

	return cmd
}

func memberRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <board>",
		Aliases: []string{"rm"},
		Short:   "Remove a member",
		Args:    cobra.ExactArgs(1),
		RunE:    runMemberRemove,
	}

	cmd.Flags().String("user", "", "Member to remove (required)")
	_ = cmd.MarkFlagRequired("user")
	cli.AddOutputFlags(cmd)

	return cmd
}

// memberRequest resolves the board argument and reads --user and --role.
func memberRequest(ctx context.Context, cmd *cobra.Command, c *cli.CLI, ref string) (boardservice.MemberRequest, error) {
	b, err := c.ResolveBoard(ctx, ref)
	if err != nil {
		return boardservice.MemberRequest{}, err
	}
	user, _ := cmd.Flags().GetString("user")
	req := boardservice.MemberRequest{UserID: c.UserID, BoardID: b.ID, MemberID: types.UserID(user)}

	if cmd.Flags().Lookup("role") != nil {
		role, _ := cmd.Flags().GetString("role")
		if req.Role, err = models.ParseRole(role); err != nil {
			return req, fmt.Errorf("%w: %v", boardservice.ErrInvalidRole, err)
		}
	}
	return req, nil
}

func runMemberAdd(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req, err := memberRequest(ctx, cmd, c, args[0])
		if err != nil {
			return err
		}
		m, err := c.App.BoardService.AddMember(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("member", string(m.UserID), m, func() {
			fmt.Printf("%s Added %s as %s\n", styles.SuccessStyle.Render("✓"), m.UserID, m.Role)
		})
	})
}

func runMemberList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}
		members, err := c.App.BoardService.ListMembers(ctx, c.UserID, b.ID)
		if err != nil {
			return err
		}

		if f.Quiet {
			for _, m := range members {
				fmt.Println(m.UserID)
			}
			return nil
		}

		return f.Emit("members", "", members, func() {
			for _, m := range members {
				fmt.Printf("%s  %s\n", styles.TitleStyle.Render(string(m.UserID)), styles.SubtitleStyle.Render(string(m.Role)))
			}
		})
	})
}

func runMemberRole(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req, err := memberRequest(ctx, cmd, c, args[0])
		if err != nil {
			return err
		}
		m, err := c.App.BoardService.UpdateMemberRole(ctx, req)
		if err != nil {
			return err
		}

		return f.Emit("member", string(m.UserID), m, func() {
			fmt.Printf("%s %s is now %s\n", styles.SuccessStyle.Render("✓"), m.UserID, m.Role)
		})
	})
}

func runMemberRemove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		req, err := memberRequest(ctx, cmd, c, args[0])
		if err != nil {
			return err
		}
		if err := c.App.BoardService.RemoveMember(ctx, c.UserID, req.BoardID, req.MemberID); err != nil {
			return err
		}

		return f.Emit("user_id", string(req.MemberID), req.MemberID, func() {
			fmt.Printf("%s Removed %s\n", styles.SuccessStyle.Render("✓"), req.MemberID)
		})
	})
}
