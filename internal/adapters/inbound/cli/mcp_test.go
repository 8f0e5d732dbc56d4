package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCommand_Help(t *testing.T) {
	out, err := run(t, "mcp", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
}

func TestMCPServeCommand_Help(t *testing.T) {
	out, err := run(t, "mcp", "serve", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "stdio")
	assert.Contains(t, out, "--config")
}

func TestMCPServeCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".wcag.yaml"), []byte("ci:\n  min_score: 250\n"), 0644))

	_, err := run(t, "mcp", "serve", "--config", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
