package fixer

import "context"

// Watcher observes a config source and emits raw bytes on a channel.
// Implementations should emit the current value immediately upon Watch()
// being called so a followed tracker picks up the initial document.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when changes occur. The channel is closed when the context
	// is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}
