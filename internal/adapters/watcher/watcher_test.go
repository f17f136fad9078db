package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mlpot/internal/adapters/watcher"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextChange(t *testing.T, w *watcher.Watcher) string {
	t.Helper()

	got := make(chan string, 1)
	go func() {
		for path := range w.Changes() {
			got <- path
			return
		}
	}()

	select {
	case path := <-got:
		return path
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return ""
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	target := filepath.Join(dir, "traj.xyz")
	require.NoError(t, os.WriteFile(target, []byte("1\n\nH 0 0 0\n"), 0o600))

	w, err := watcher.NewWatcher(10*time.Millisecond, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	require.NoError(t, w.Start(t.Context(), target))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.xyz"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("1\n\nH 0 0 1\n"), 0o600))

	path := nextChange(t, w)
	resolved, err := filepath.Abs(target)
	require.NoError(t, err)
	assert.Equal(t, resolved, path)
}

func TestWatcher_StopEndsChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	w, err := watcher.NewWatcher(10*time.Millisecond, log)
	require.NoError(t, err)
	require.NoError(t, w.Start(t.Context(), filepath.Join(dir, "traj.xyz")))

	done := make(chan struct{})
	go func() {
		for range w.Changes() {
		}
		close(done)
	}()

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Changes did not end after Stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	w, err := watcher.NewWatcher(10*time.Millisecond, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(t.Context(), filepath.Join(t.TempDir(), "missing", "traj.xyz"))
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}
