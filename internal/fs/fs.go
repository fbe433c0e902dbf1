// Package fs defines the filesystem abstraction used by dir-sweeper.
// It provides the FS interface and the DirInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

// DirInfo describes one filesystem entry. A zero MTime means the
// modification time could not be read.
type DirInfo struct {
	Path  string
	Name  string
	IsDir bool
	MTime time.Time
}

type FS interface {
	Stat(path string) (DirInfo, error)
	ReadDir(path string) ([]DirInfo, error)
	RemoveAll(ctx context.Context, path string) error
}
