package ports

import (
	"context"
	"iter"
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	Path string
}

// Watcher observes a directory tree for changes, used by watch mode to
// regenerate the database when the workspace changes.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
