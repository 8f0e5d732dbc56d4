package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/gitinfo"
)

// initRepo creates a repository with one commit holding a document.
func initRepo(t *testing.T) (dir, hash string) {
	t.Helper()
	dir = t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "plan.docx"), []byte("doc"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("docs/plan.docx")
	require.NoError(t, err)
	h, err := wt.Commit("add plan", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)
	return dir, h.String()
}

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir, _ := initRepo(t)

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
	assert.True(t, gi.IsGitRepo(filepath.Join(dir, "docs")))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(t.TempDir()))
}

func TestGitInfo_CommitHash_ReturnsHash(t *testing.T) {
	dir, want := initRepo(t)

	hash, err := gitinfo.New().CommitHash(filepath.Join(dir, "docs"))
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
	assert.Equal(t, want, hash)
}

func TestGitInfo_CommitHash_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = gitinfo.New().CommitHash(dir)
	assert.Error(t, err)
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
