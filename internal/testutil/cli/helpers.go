package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// ParseJSON decodes command output produced with --json.
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output should be valid JSON: %s", output)
	return result
}
