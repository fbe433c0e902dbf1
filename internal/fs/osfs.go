package fs

import (
	"context"
	"os"
	"path/filepath"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (DirInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return DirInfo{}, err
	}

	return DirInfo{
		Path:  path,
		Name:  st.Name(),
		IsDir: st.IsDir(),
		MTime: st.ModTime(),
	}, nil
}

func (o *OSFS) ReadDir(path string) ([]DirInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]DirInfo, 0, len(entries))
	for _, e := range entries {
		d := DirInfo{
			Path:  filepath.Join(path, e.Name()),
			Name:  e.Name(),
			IsDir: e.IsDir(),
		}
		// A failed per-entry stat leaves MTime zero; callers treat the
		// entry as not stale.
		if info, err := e.Info(); err == nil {
			d.MTime = info.ModTime()
		}
		infos = append(infos, d)
	}

	return infos, nil
}

func (o *OSFS) RemoveAll(ctx context.Context, path string) error {
	return removeWithRetry(ctx, path)
}
