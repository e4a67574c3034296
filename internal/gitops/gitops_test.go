package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	return Repo{Dir: t.TempDir(), AuthorName: "Test", AuthorEmail: "test@localhost"}
}

func TestInitAndIsRepo(t *testing.T) {
	repo := newTestRepo(t)
	assert.False(t, repo.IsRepo())

	require.NoError(t, repo.Init())
	assert.True(t, repo.IsRepo())
}

func TestCommitAll(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Init())

	path := filepath.Join(repo.Dir, "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	dirty, err := repo.HasChanges()
	require.NoError(t, err)
	assert.True(t, dirty)

	hash, err := repo.CommitAll("tx add: deposit")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	dirty, err = repo.HasChanges()
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestCommitAll_NothingStaged(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Init())

	_, err := repo.CommitAll("empty")
	require.Error(t, err, "empty commit should fail")
}
