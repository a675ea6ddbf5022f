package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/events"
)

var errNoSubscriber = errors.New("watching requires redis.url to be configured")

// WatchCmd returns the board watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <board>",
		Short: "Stream change events for a board",
		Long: `Print an event whenever another process changes the board. Requires
redis.url in the config. Runs until interrupted, or until --count events
were printed.

Examples:
  boardly board watch roadmap
  boardly board watch roadmap --json --count=1
`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().Int("count", 0, "Exit after this many events (0 = no limit)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		sub, ok := c.App.Events().(events.Subscriber)
		if !ok {
			return errNoSubscriber
		}
		b, err := c.ResolveBoard(ctx, args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stream, err := sub.Subscribe(ctx, b.ID)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		seen := 0
		for event := range stream {
			switch {
			case f.JSON:
				if err := enc.Encode(event); err != nil {
					return err
				}
			case f.Quiet:
				fmt.Println(event.Type)
			default:
				fmt.Printf("%s %s #%d\n",
					styles.SubtitleStyle.Render(event.Timestamp.Local().Format(time.TimeOnly)),
					styles.LabelStyle.Render(string(event.Type)),
					event.SequenceID)
			}

			seen++
			if count > 0 && seen >= count {
				return nil
			}
		}
		return nil
	})
}
