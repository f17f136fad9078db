package watcher_test

import (
	"slices"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slices.Sort(paths)
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/run/traj.xyz")
		time.Sleep(50 * time.Millisecond)
		d.Add("/run/traj.xyz")
		time.Sleep(50 * time.Millisecond)
		d.Add("/run/other.xyz")

		time.Sleep(99 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()

		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/run/other.xyz", "/run/traj.xyz"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(10*time.Millisecond, rec.record)

		d.Add("/run/traj.xyz")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Add("/run/traj.xyz")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(time.Second, rec.record)

		d.Add("/run/traj.xyz")
		d.Flush()
		require.Len(t, rec.snapshot(), 1)

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)

		d.Flush()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(10*time.Millisecond, rec.record)

		d.Add("/run/traj.xyz")
		d.Stop()
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/run/traj.xyz")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		assert.NotPanics(t, d.Flush)
	})
}
