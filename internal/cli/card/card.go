package card

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(LsCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(CloneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// dueLayouts are the accepted --due formats, tried in order.
var dueLayouts = []string{time.DateOnly, time.RFC3339}

// parseDue parses a --due value. A malformed date is a data error rather
// than a usage error: the flag was given, its content is wrong.
func parseDue(value string) (*time.Time, error) {
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, &cli.ExitError{
		Exit: cli.ExitDataErr,
		Code: "INVALID_DATE",
		Err:  fmt.Errorf("invalid due date %q: use YYYY-MM-DD or RFC 3339", value),
	}
}
