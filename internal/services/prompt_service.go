package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xvierd/gitprompt/internal/domain"
	"github.com/xvierd/gitprompt/internal/log"
	"github.com/xvierd/gitprompt/internal/ports"
)

// Canonicalizer turns a path into an absolute path with symlinks resolved.
type Canonicalizer func(path string) (string, error)

// Canonical is the default Canonicalizer.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// PromptService runs the prompt pipeline: probe the repository, resolve the
// working directory, summarize the status and render the template.
type PromptService struct {
	prober    ports.GitProber
	config    domain.PromptConfig
	canonical Canonicalizer
}

// NewPromptService creates a new prompt service.
func NewPromptService(prober ports.GitProber, config domain.PromptConfig) *PromptService {
	return &PromptService{
		prober:    prober,
		config:    config,
		canonical: Canonical,
	}
}

// SetCanonicalizer replaces the path canonicalizer.
func (s *PromptService) SetCanonicalizer(c Canonicalizer) {
	s.canonical = c
}

// Config returns the prompt configuration in use.
func (s *PromptService) Config() domain.PromptConfig {
	return s.config
}

// Evaluate runs the pipeline for dir and returns every intermediate value.
// An empty dir means the process working directory. It never fails: any
// error degrades to the default folder and an empty status.
func (s *PromptService) Evaluate(ctx context.Context, dir string) *domain.PromptState {
	state := &domain.PromptState{Dir: dir}

	probe := s.prober.Probe(ctx, dir)
	state.Inside = probe.Inside

	if probe.Inside {
		state.Lines = probe.Lines
		state.Status = domain.Summarize(probe.Lines, s.config.Categories)

		gitDir, folder, err := s.resolveWorkDir(ctx, dir)
		if err != nil {
			log.Printf("resolve work dir: %v", err)
		} else {
			state.GitDir = gitDir
			state.Folder = &folder
		}
	}

	state.Prompt = domain.Render(s.config, state.Folder, state.Status)
	return state
}

// Render returns the prompt string for dir.
func (s *PromptService) Render(ctx context.Context, dir string) string {
	return s.Evaluate(ctx, dir).Prompt
}

// resolveWorkDir returns the canonical git dir and the display folder for dir.
func (s *PromptService) resolveWorkDir(ctx context.Context, dir string) (string, string, error) {
	base := dir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	gitDir, err := s.prober.GitDir(ctx, base)
	if err != nil {
		return "", "", fmt.Errorf("failed to get git dir: %w", err)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(base, gitDir)
	}

	gitDir, err = s.canonical(gitDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve git dir: %w", err)
	}

	cwd, err := s.canonical(base)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return gitDir, domain.ResolveWorkDir(filepath.ToSlash(gitDir), filepath.ToSlash(cwd)), nil
}
