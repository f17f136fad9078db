package ports

import (
	"context"
	"iter"
)

// Watcher reports changes to watched files.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given file.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes yields the path once per debounced burst of writes.
	Changes() iter.Seq[string]
}
