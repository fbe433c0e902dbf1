package sweep

import "time"

// IsStale reports whether a directory last modified at dirTime has
// been idle for at least keep by referenceTime. The boundary is
// inclusive: an age of exactly keep is stale. A zero dirTime means the
// modification time could not be read; such directories are never
// stale, so missing metadata can never cause a deletion.
//
// The directory's own mtime is the idle-time proxy; see the open
// question in DESIGN.md about build steps touching it.
func IsStale(referenceTime, dirTime time.Time, keep time.Duration) bool {
	if dirTime.IsZero() {
		return false
	}
	return referenceTime.Sub(dirTime) >= keep
}
