package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoRoot(t *testing.T) {
	assert.Equal(t, "/home/user/project", RepoRoot("/home/user/project/.git"))
	assert.Equal(t, "/srv/bare.git", RepoRoot("/srv/bare.git"))
}

func TestRootParent(t *testing.T) {
	assert.Equal(t, "/home/user/", RootParent("/home/user/project"))
	assert.Equal(t, "/", RootParent("/project"))
	assert.Equal(t, "", RootParent("project"))
}

func TestResolveWorkDir(t *testing.T) {
	tests := []struct {
		name   string
		gitDir string
		cwd    string
		want   string
	}{
		{"subdirectory", "/home/user/project/.git", "/home/user/project/src", "project/src"},
		{"repository root", "/home/user/project/.git", "/home/user/project", "project"},
		{"outside parent", "/home/user/project/.git", "/mnt/link/project/src", "/mnt/link/project/src"},
		{"repository at filesystem root", "/project/.git", "/project/a/b", "project/a/b"},
		{"relative git dir", "project", "/home/user/project", "/home/user/project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWorkDir(tt.gitDir, tt.cwd))
		})
	}
}
