package schedule

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkomar/dir-sweeper/internal/config"
	"github.com/jkomar/dir-sweeper/internal/logging"
)

func TestNewRequiresCronSpec(t *testing.T) {
	_, err := New(config.ScheduleConfig{}, logging.Nop{}, func(context.Context) {})

	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
}

func TestFireRunsSweep(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "sweep.lock")

	ran := 0
	d, err := New(
		config.ScheduleConfig{Cron: "* * * * *", LockFile: lockPath},
		logging.Nop{},
		func(context.Context) { ran++ },
	)
	require.NoError(t, err)

	d.fire(context.Background())
	d.fire(context.Background())
	assert.Equal(t, 2, ran)
}

// An activation is skipped while the lock is held by a previous run.
func TestFireSkipsWhenLocked(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "sweep.lock")

	held := flock.New(lockPath)
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	ran := 0
	d, err := New(
		config.ScheduleConfig{Cron: "* * * * *", LockFile: lockPath},
		logging.Nop{},
		func(context.Context) { ran++ },
	)
	require.NoError(t, err)

	d.fire(context.Background())
	assert.Zero(t, ran)
}

func TestStartRejectsBadCronSpec(t *testing.T) {
	d, err := New(
		config.ScheduleConfig{Cron: "not a cron spec", LockFile: filepath.Join(t.TempDir(), "l")},
		logging.Nop{},
		func(context.Context) {},
	)
	require.NoError(t, err)

	err = d.Start(context.Background())
	assert.Error(t, err)
}
