package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitprompt/internal/config"
)

func TestConfigPathCmd(t *testing.T) {
	cfgPath := tempConfigPath(t)

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, strings.TrimSpace(stdout))
}

func TestConfigInitCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, cfgPath)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, _, err = executeCmd(newRootCmd(), "--config", cfgPath, "config", "init")
	assert.Error(t, err, "existing file must not be overwritten without --force")

	_, _, err = executeCmd(newRootCmd(), "--config", cfgPath, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShowCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend = \"go-git\"\n"), 0o644))

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "go-git")
	assert.Contains(t, stdout, "untracked")
	assert.Contains(t, stdout, "repo/src")
}
