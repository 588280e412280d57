package domain

import (
	"strings"
)

// GitDirSuffix is the trailing administrative directory component,
// separator included.
const GitDirSuffix = "/.git"

// RepoRoot strips the administrative directory suffix from a canonical
// git dir path. Paths without the suffix are returned unchanged.
func RepoRoot(gitDir string) string {
	return strings.TrimSuffix(gitDir, GitDirSuffix)
}

// RootParent returns the parent of root up to and including the last
// path separator. A root with no separator yields "".
func RootParent(root string) string {
	i := strings.LastIndex(root, "/")
	if i < 0 {
		return ""
	}
	return root[:i+1]
}

// ResolveWorkDir returns cwd relative to the parent of the repository root,
// so /home/user/project/src becomes project/src. When cwd is not under that
// parent it is returned unchanged. Both arguments must be canonical.
func ResolveWorkDir(gitDir, cwd string) string {
	parent := RootParent(RepoRoot(gitDir))
	if parent == "" {
		return cwd
	}
	if rel, ok := strings.CutPrefix(cwd, parent); ok {
		return rel
	}
	return cwd
}
