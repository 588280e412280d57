package ports

import (
	"context"

	"github.com/xvierd/gitprompt/internal/domain"
)

// ProbeResult is the outcome of checking a directory for a git working tree.
type ProbeResult struct {
	// Inside is true when the directory belongs to a working tree.
	Inside bool
	// Lines holds the porcelain status entries. Empty for a clean tree.
	Lines []domain.StatusLine
}

// GitProber defines the interface for querying git state.
// This is a driven port (implemented by adapters).
type GitProber interface {
	// Probe checks whether dir is inside a working tree and collects its
	// status. Failures are reported as Inside=false, never as an error.
	Probe(ctx context.Context, dir string) ProbeResult

	// GitDir returns the administrative directory for dir as reported by
	// git. The path may be relative to dir.
	GitDir(ctx context.Context, dir string) (string, error)
}
