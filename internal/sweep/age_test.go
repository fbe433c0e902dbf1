package sweep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsStaleBoundaryIsInclusive(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	keep := 24 * time.Hour

	exactly := ref.Add(-24 * time.Hour)
	assert.True(t, IsStale(ref, exactly, keep))

	justUnder := ref.Add(-24*time.Hour + time.Second)
	assert.False(t, IsStale(ref, justUnder, keep))

	older := ref.Add(-48 * time.Hour)
	assert.True(t, IsStale(ref, older, keep))
}

func TestIsStaleZeroKeep(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// keep of zero makes anything not in the future stale
	assert.True(t, IsStale(ref, ref, 0))
	assert.True(t, IsStale(ref, ref.Add(-time.Minute), 0))
	assert.False(t, IsStale(ref, ref.Add(time.Minute), 0))
}

// Missing metadata must never lead to deletion.
func TestIsStaleUnknownModTime(t *testing.T) {
	ref := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsStale(ref, time.Time{}, 0))
	assert.False(t, IsStale(ref, time.Time{}, 24*time.Hour))
}
