package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jkomar/dir-sweeper/internal/fs"
	"github.com/jkomar/dir-sweeper/internal/logging"
)

// Outcome is the result of one attempted deletion.
type Outcome int

const (
	Deleted Outcome = iota
	// AlreadyGone means the directory vanished between planning and
	// execution, typically because another process removed it.
	AlreadyGone
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case AlreadyGone:
		return "already-gone"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExecResult records what happened to one planned path.
type ExecResult struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Executor applies a deletion plan. It deletes only paths handed to
// it, never anything it discovers on its own.
type Executor struct {
	fs  fs.FS
	log logging.Logger
}

func NewExecutor(filesystem fs.FS, log logging.Logger) *Executor {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Executor{fs: filesystem, log: log}
}

// Execute deletes every planned path recursively. Each deletion is
// independent: a failure is recorded and the remaining paths still
// run.
func (e *Executor) Execute(ctx context.Context, deletions []string) []ExecResult {
	results := make([]ExecResult, 0, len(deletions))
	for _, path := range deletions {
		results = append(results, e.remove(ctx, path))
	}
	return results
}

// remove re-verifies the path right before deletion so a directory
// removed by someone else since planning is reported as AlreadyGone
// rather than failing the run.
func (e *Executor) remove(ctx context.Context, path string) ExecResult {
	info, err := e.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.log.Info("executor: %s already gone", path)
			return ExecResult{Path: path, Outcome: AlreadyGone, Err: err}
		}
		return ExecResult{Path: path, Outcome: Failed, Err: err}
	}
	if !info.IsDir {
		return ExecResult{Path: path, Outcome: Failed, Err: fmt.Errorf("%s is not a directory", path)}
	}

	if err := e.fs.RemoveAll(ctx, path); err != nil {
		e.log.Error("executor: removing %s: %v", path, err)
		return ExecResult{Path: path, Outcome: Failed, Err: err}
	}

	e.log.Info("executor: deleted %s", path)
	return ExecResult{Path: path, Outcome: Deleted}
}
