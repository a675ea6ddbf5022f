package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/boardly/internal/cli"
	"github.com/thenoetrevino/boardly/internal/config"
	"github.com/thenoetrevino/boardly/internal/testutil/cli"
)

func TestConfigInit(t *testing.T) {
	app := cli.SetupCLITest(t)

	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			output, err := cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--path", path})
			require.NoError(t, err)
			assert.Contains(t, output, "Config written to")

			cfg, err := config.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, config.Default().Limits, cfg.Limits)
		})
	}
}

func TestConfigInit_UsesBoardlyConfig(t *testing.T) {
	app := cli.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "boardly.yaml")
	t.Setenv("BOARDLY_CONFIG", path)

	_, err := cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--quiet"})
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	app := cli.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	_, err := cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--path", path})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitConflict, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, InitCmd(), []string{"--path", path, "--force"})
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "max_cards_per_list:")
	assert.Contains(t, output, "driver:")
}
