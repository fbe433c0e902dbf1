package fs

import (
	"context"
	"os"
)

// wraps os.RemoveAll with retry logic so a directory busy at the
// moment of deletion gets a few more chances before being reported
// as failed.

func removeWithRetry(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		return os.RemoveAll(path)
	})
}
