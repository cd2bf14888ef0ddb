package fixer

import "context"

// ChannelWatcher wraps an existing byte channel as a Watcher.
// Useful for testing and for hosts that already produce config documents.
type ChannelWatcher struct {
	ch <-chan []byte
}

// NewChannelWatcher creates a ChannelWatcher over ch.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// Watch returns the wrapped channel. Closing the source channel ends the
// watch; the context is honoured by the consumer.
func (w *ChannelWatcher) Watch(_ context.Context) (<-chan []byte, error) {
	return w.ch, nil
}
