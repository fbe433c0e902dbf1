package sweep

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkomar/dir-sweeper/internal/logging"
)

func TestExecuteDeletesRecursively(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "project-a", "branches")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "feature", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "feature", "notes.txt"), []byte("x"), 0o644))

	ex := NewExecutor(nil, logging.Nop{})
	results := ex.Execute(context.Background(), []string{target})

	require.Len(t, results, 1)
	assert.Equal(t, Deleted, results[0].Outcome)
	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	// siblings untouched
	_, err = os.Stat(filepath.Join(root, "project-a"))
	assert.NoError(t, err)
}

// A path removed between planning and execution is reported, not
// escalated, and later paths still run.
func TestExecuteAlreadyGone(t *testing.T) {
	root := t.TempDir()
	gone := filepath.Join(root, "vanished")
	kept := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(kept, 0o755))

	ex := NewExecutor(nil, logging.Nop{})
	results := ex.Execute(context.Background(), []string{gone, kept})

	require.Len(t, results, 2)
	assert.Equal(t, AlreadyGone, results[0].Outcome)
	assert.Error(t, results[0].Err)
	assert.Equal(t, Deleted, results[1].Outcome)

	_, err := os.Stat(kept)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	dir := filepath.Join(root, "dir")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	ex := NewExecutor(nil, logging.Nop{})
	results := ex.Execute(context.Background(), []string{file, dir})

	require.Len(t, results, 2)
	assert.Equal(t, Failed, results[0].Outcome)
	assert.Equal(t, Deleted, results[1].Outcome)

	// the file is never removed
	_, err := os.Stat(file)
	assert.NoError(t, err)
}

func TestExecuteEmptyPlan(t *testing.T) {
	ex := NewExecutor(nil, logging.Nop{})
	assert.Empty(t, ex.Execute(context.Background(), nil))
}
