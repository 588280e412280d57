package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_Bash(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "init", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "__gitprompt_ps1()")
	assert.Contains(t, stdout, "PROMPT_COMMAND=")
	assert.Contains(t, stdout, "--shell bash")
}

func TestInitCmd_DefaultShell(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PS1=")
}

func TestInitCmd_UnsupportedShell(t *testing.T) {
	_, _, err := executeCmd(newRootCmd(), "init", "fish")
	assert.Error(t, err)
}

func TestInitCmd_Zsh(t *testing.T) {
	stdout, _, err := executeCmd(newRootCmd(), "init", "zsh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "__gitprompt_precmd()")
	assert.Contains(t, stdout, "PROMPT=")
	assert.Contains(t, stdout, "--shell zsh")
	assert.Contains(t, stdout, "precmd_functions+=(__gitprompt_precmd)")
}

func TestZshSnippet_QuotesPath(t *testing.T) {
	snippet := zshSnippet("/opt/it's here/gitprompt")
	assert.Contains(t, snippet, `'/opt/it'\''s here/gitprompt' --shell zsh`)
}

func TestBashSnippet_QuotesPath(t *testing.T) {
	snippet := bashSnippet("/opt/it's here/gitprompt")
	assert.Contains(t, snippet, `'/opt/it'\''s here/gitprompt'`)
}

func TestBinaryPath_Fallback(t *testing.T) {
	orig := executablePath
	t.Cleanup(func() { executablePath = orig })

	executablePath = func() (string, error) { return "", errors.New("unknown") }
	assert.Equal(t, "gitprompt", binaryPath())

	executablePath = func() (string, error) { return "/usr/local/bin/gitprompt", nil }
	assert.Equal(t, "/usr/local/bin/gitprompt", binaryPath())
}
