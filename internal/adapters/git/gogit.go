package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/xvierd/gitprompt/internal/domain"
	"github.com/xvierd/gitprompt/internal/log"
	"github.com/xvierd/gitprompt/internal/ports"
)

// GoGitProber implements ports.GitProber in-process with go-git.
type GoGitProber struct{}

// NewGoGitProber creates a new go-git prober.
func NewGoGitProber() *GoGitProber {
	return &GoGitProber{}
}

// Ensure GoGitProber implements ports.GitProber.
var _ ports.GitProber = (*GoGitProber)(nil)

// Probe opens the repository containing dir and reads its worktree status.
func (p *GoGitProber) Probe(ctx context.Context, dir string) ports.ProbeResult {
	repo, abs, err := openRepo(dir)
	if err != nil {
		log.Printf("probe %s: %v", dir, err)
		return ports.ProbeResult{}
	}

	// git refuses to run status from inside the .git directory.
	if gitDir, err := storageRoot(repo); err == nil && within(gitDir, abs) {
		log.Printf("probe %s: inside git directory %s", dir, gitDir)
		return ports.ProbeResult{}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		log.Printf("probe %s: failed to get worktree: %v", dir, err)
		return ports.ProbeResult{}
	}

	status, err := worktree.Status()
	if err != nil {
		log.Printf("probe %s: failed to get worktree status: %v", dir, err)
		return ports.ProbeResult{}
	}

	return ports.ProbeResult{
		Inside: true,
		Lines:  statusLines(status),
	}
}

// GitDir returns the absolute .git directory of the repository containing dir.
func (p *GoGitProber) GitDir(ctx context.Context, dir string) (string, error) {
	repo, _, err := openRepo(dir)
	if err != nil {
		return "", err
	}
	return storageRoot(repo)
}

// openRepo opens the repository containing dir and returns it with the
// absolute form of dir.
func openRepo(dir string) (*git.Repository, string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open git repository: %w", err)
	}
	return repo, abs, nil
}

func storageRoot(repo *git.Repository) (string, error) {
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", errors.New("repository is not stored on the filesystem")
	}
	return storage.Filesystem().Root(), nil
}

// within reports whether path is root or lies below it, after resolving
// symlinks on both.
func within(root, path string) bool {
	rel, err := filepath.Rel(resolve(root), resolve(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func resolve(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// statusLines converts go-git status entries to porcelain lines, sorted by
// path so repeated renders see the same order.
func statusLines(status git.Status) []domain.StatusLine {
	paths := make([]string, 0, len(status))
	for path, s := range status {
		if s.Staging == git.Unmodified && s.Worktree == git.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	lines := make([]domain.StatusLine, 0, len(paths))
	for _, path := range paths {
		s := status[path]
		line := domain.StatusLine{
			Staged:   byte(s.Staging),
			Unstaged: byte(s.Worktree),
			Path:     path,
		}
		if s.Extra != "" {
			line.Path = s.Extra + " -> " + path
		}
		lines = append(lines, line)
	}
	return lines
}
