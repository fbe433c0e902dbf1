// Package schedule runs sweeps on a cron schedule for daemon mode.
// The no-overlap contract lives here, outside the sweep core: a lock
// file makes an activation skip itself while a previous run is still
// active.
package schedule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/robfig/cron/v3"

	"github.com/jkomar/dir-sweeper/internal/config"
	"github.com/jkomar/dir-sweeper/internal/logging"
)

// Daemon triggers one sweep per cron activation.
type Daemon struct {
	spec     string
	lockPath string
	log      logging.Logger
	run      func(context.Context)
}

func New(cfg config.ScheduleConfig, log logging.Logger, run func(context.Context)) (*Daemon, error) {
	if cfg.Cron == "" {
		return nil, &config.Error{Msg: "schedule.cron is required for daemon mode"}
	}
	lockPath := cfg.LockFile
	if lockPath == "" {
		lockPath = filepath.Join(os.TempDir(), "dir-sweeper.lock")
	}
	return &Daemon{
		spec:     cfg.Cron,
		lockPath: lockPath,
		log:      log,
		run:      run,
	}, nil
}

// Start blocks until ctx is canceled, firing a sweep on each cron
// activation. A running sweep finishes before Stop returns.
func (d *Daemon) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(d.spec, func() { d.fire(ctx) }); err != nil {
		return fmt.Errorf("parsing cron spec %q: %w", d.spec, err)
	}

	d.log.Info("daemon: schedule %q, lock file %s", d.spec, d.lockPath)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// fire runs one sweep under the lock file. If the lock is held, a
// previous activation is still sweeping and this one is skipped.
func (d *Daemon) fire(ctx context.Context) {
	lock := flock.New(d.lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		d.log.Error("daemon: lock %s: %v", d.lockPath, err)
		return
	}
	if !ok {
		d.log.Warn("daemon: previous sweep still active, skipping activation")
		return
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			d.log.Error("daemon: unlock %s: %v", d.lockPath, err)
		}
	}()

	d.run(ctx)
}
