package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitprompt/internal/domain"
)

// initRepo creates a repository with one committed file, tracked.txt.
func initRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("v1"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("tracked.txt")
	require.NoError(t, err)

	_, err = worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestNewGoGitProber(t *testing.T) {
	assert.NotNil(t, NewGoGitProber())
}

func TestGoGitProber_Probe_Clean(t *testing.T) {
	dir := initRepo(t)

	res := NewGoGitProber().Probe(context.Background(), dir)
	assert.True(t, res.Inside)
	assert.Empty(t, res.Lines)
}

func TestGoGitProber_Probe_Changes(t *testing.T) {
	dir := initRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("v2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("new"), 0o644))

	res := NewGoGitProber().Probe(context.Background(), dir)
	require.True(t, res.Inside)
	require.Len(t, res.Lines, 2)

	assert.Equal(t, "tracked.txt", res.Lines[0].Path)
	assert.Equal(t, byte('M'), res.Lines[0].Unstaged)
	assert.Equal(t, "untracked.txt", res.Lines[1].Path)
	assert.Equal(t, byte('?'), res.Lines[1].Staged)

	assert.Equal(t, "*?", domain.Summarize(res.Lines, domain.DefaultCategoryTable()))
}

func TestGoGitProber_Probe_Subdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	res := NewGoGitProber().Probe(context.Background(), sub)
	assert.True(t, res.Inside)
}

func TestGoGitProber_Probe_NoRepo(t *testing.T) {
	res := NewGoGitProber().Probe(context.Background(), t.TempDir())
	assert.False(t, res.Inside)
	assert.Nil(t, res.Lines)
}

func TestGoGitProber_Probe_InsideGitDir(t *testing.T) {
	dir := initRepo(t)
	p := NewGoGitProber()

	for _, sub := range []string{".git", filepath.Join(".git", "refs")} {
		res := p.Probe(context.Background(), filepath.Join(dir, sub))
		assert.False(t, res.Inside, sub)
		assert.Nil(t, res.Lines, sub)
	}
}

func TestWithin(t *testing.T) {
	root := t.TempDir()

	assert.True(t, within(root, root))
	assert.True(t, within(root, filepath.Join(root, "refs", "heads")))
	assert.False(t, within(root, filepath.Dir(root)))
	assert.False(t, within(filepath.Join(root, ".git"), filepath.Join(root, ".github")))
}

func TestGoGitProber_GitDir(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	gitDir, err := NewGoGitProber().GitDir(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git"), gitDir)
}

func TestGoGitProber_GitDir_NoRepo(t *testing.T) {
	_, err := NewGoGitProber().GitDir(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestStatusLines_SkipsUnmodified(t *testing.T) {
	status := git.Status{
		"b.txt":    &git.FileStatus{Staging: git.Added, Worktree: git.Unmodified},
		"a.txt":    &git.FileStatus{Staging: git.Unmodified, Worktree: git.Unmodified},
		"gone.txt": &git.FileStatus{Staging: git.Unmodified, Worktree: git.Deleted},
	}

	lines := statusLines(status)
	require.Len(t, lines, 2)
	assert.Equal(t, domain.StatusLine{Staged: 'A', Unstaged: ' ', Path: "b.txt"}, lines[0])
	assert.Equal(t, domain.StatusLine{Staged: ' ', Unstaged: 'D', Path: "gone.txt"}, lines[1])
}

func TestStatusLines_Rename(t *testing.T) {
	status := git.Status{
		"new.txt": &git.FileStatus{Staging: git.Renamed, Worktree: git.Unmodified, Extra: "old.txt"},
	}

	lines := statusLines(status)
	require.Len(t, lines, 1)
	assert.Equal(t, "old.txt -> new.txt", lines[0].Path)
	assert.Equal(t, byte('R'), lines[0].Staged)
}
