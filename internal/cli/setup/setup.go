// Package setup holds the commands that manage boardly's own configuration.
package setup

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/cli/styles"
	"github.com/thenoetrevino/boardly/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the boardly config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write the default settings to the config file so they can be edited.
The file goes to --path, or BOARDLY_CONFIG, or
$XDG_CONFIG_HOME/boardly/config.yaml. A path ending in .toml is written as
TOML.

Examples:
  boardly config init
  boardly config init --path=./boardly.toml
`,
		RunE: runInit,
	}

	cmd.Flags().String("path", "", "Where to write the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)

	return cmd
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration boardly runs with: the config file merged
with environment overrides and defaults.

Examples:
  boardly config show
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)
	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return cli.Fail(f, err)
		}
	}
	if _, err := os.Stat(path); err == nil && !force {
		return cli.Fail(f, &cli.ExitError{
			Exit: cli.ExitConflict,
			Code: "CONFLICT",
			Err:  fmt.Errorf("%s already exists (use --force to overwrite)", path),
		})
	}

	if err := config.Default().SaveTo(path); err != nil {
		return cli.Fail(f, err)
	}

	return f.Emit("path", path, path, func() {
		fmt.Printf("%s Config written to %s\n", styles.SuccessStyle.Render("✓"), path)
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = cmd.Root().Context()
	}

	cfg, err := cli.ConfigFromContext(ctx)
	if err != nil {
		return cli.Fail(f, err)
	}

	return f.Emit("config", "", cfg, func() {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Print(string(out))
	})
}
