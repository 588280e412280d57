package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCmd_Structure(t *testing.T) {
	cmd := newStatusCmd()
	assert.Equal(t, "status", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
}

func TestStatusCmd_JSON(t *testing.T) {
	cfgPath := tempConfigPath(t)
	repo := newRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "tracked.txt"), []byte("v2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "b.txt"), []byte("b"), 0o644))

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "--backend", "go-git", "--dir", repo, "status", "--json")
	require.NoError(t, err)

	var result struct {
		Inside     bool    `json:"inside_tree"`
		Folder     *string `json:"folder"`
		Status     string  `json:"status"`
		Categories []struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
			Count  int    `json:"count"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.True(t, result.Inside)
	require.NotNil(t, result.Folder)
	assert.Equal(t, "project", *result.Folder)
	assert.Equal(t, "*?", result.Status)
	require.Len(t, result.Categories, 4)
	assert.Equal(t, "modified", result.Categories[0].Name)
	assert.Equal(t, 1, result.Categories[0].Count)
	assert.Equal(t, "untracked", result.Categories[3].Name)
	assert.Equal(t, 2, result.Categories[3].Count)
}

func TestStatusCmd_NotAWorkingTree(t *testing.T) {
	cfgPath := tempConfigPath(t)

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "--backend", "go-git", "--dir", t.TempDir(), "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not inside a git working tree.")
}

func TestStatusCmd_Text(t *testing.T) {
	cfgPath := tempConfigPath(t)
	repo := newRepo(t)
	require.NoError(t, os.Remove(filepath.Join(repo, "tracked.txt")))

	stdout, _, err := executeCmd(newRootCmd(), "--config", cfgPath, "--backend", "go-git", "--dir", repo, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deleted")
	assert.Contains(t, stdout, "Summary")
}
