// Package git provides GitProber implementations backed by the git binary
// and by go-git.
package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/xvierd/gitprompt/internal/domain"
	"github.com/xvierd/gitprompt/internal/log"
	"github.com/xvierd/gitprompt/internal/ports"
)

// CLIProber queries git state through the local git binary.
type CLIProber struct {
	Exec func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewCLIProber returns a prober that runs the system git binary.
func NewCLIProber() *CLIProber {
	return &CLIProber{
		Exec: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, name, args...)
		},
	}
}

// Ensure CLIProber implements ports.GitProber.
var _ ports.GitProber = (*CLIProber)(nil)

// Probe runs `git status --porcelain` in dir. A missing binary or a
// non-zero exit means dir is not inside a working tree. Optional locks are
// disabled so a render never holds index.lock.
func (p *CLIProber) Probe(ctx context.Context, dir string) ports.ProbeResult {
	out, err := p.run(ctx, dir, "--no-optional-locks", "status", "--porcelain")
	if err != nil {
		log.Printf("probe %s: %v", dir, err)
		return ports.ProbeResult{}
	}
	return ports.ProbeResult{
		Inside: true,
		Lines:  domain.ParseStatus(strings.TrimSuffix(out, "\n")),
	}
}

// GitDir runs `git rev-parse --git-dir` in dir.
func (p *CLIProber) GitDir(ctx context.Context, dir string) (string, error) {
	out, err := p.run(ctx, dir, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	gitDir := strings.TrimSuffix(out, "\n")
	if gitDir == "" {
		return "", fmt.Errorf("git rev-parse --git-dir returned no path")
	}
	return gitDir, nil
}

// run executes a git subcommand and returns its stdout. Stderr is dropped.
func (p *CLIProber) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := p.Exec(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return out.String(), nil
}
