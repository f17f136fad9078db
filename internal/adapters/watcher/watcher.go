package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher reports writes to one file.
//
// It watches the parent directory so that editors which save by renaming a
// temporary file over the target are still seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	logger    ports.Logger
	target    string
	changes   chan string
	done      chan struct{}
	stopOnce  sync.Once
}

// NewWatcher creates a watcher that coalesces events within window.
func NewWatcher(window time.Duration, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(domain.Classify(domain.ErrWatchFailed, err), "failed to create file watcher")
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		changes:   make(chan string, 1),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching path. Events stop when ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.Classify(domain.ErrWatchFailed, err), "failed to resolve path"), "path", path)
	}
	w.target = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(domain.Classify(domain.ErrWatchFailed, err), "failed to watch directory"), "path", path)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.debouncer.Stop()
		err = w.fsWatcher.Close()
	})
	return err
}

// Changes yields the watched path once per debounced burst of writes.
// The sequence ends when the watcher stops.
func (w *Watcher) Changes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			select {
			case <-w.done:
				return
			case path := <-w.changes:
				if !yield(path) {
					return
				}
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.debouncer.Add(w.target)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

// emit never blocks. A change that is already queued covers later ones.
func (w *Watcher) emit(paths []string) {
	for _, path := range paths {
		select {
		case w.changes <- path:
		default:
		}
	}
}
