package fixer

import (
	"context"
	"errors"
	"fmt"
)

// Follow applies every config document emitted by watcher to the tracker.
// Documents are decoded with codec onto DefaultConfig; the tracker's current
// container and callbacks are kept. Each document is applied on the host's
// notification context through Host.Post.
//
// A document that fails to decode or validate is rejected: the error is
// recorded (LastError, ErrorHistory), TrackerConfigRejected is emitted, and
// the current config stays in effect.
//
// Follow returns once the watcher has started. Following stops when ctx is
// canceled, the watcher closes its channel, or the tracker is destroyed.
func (t *Tracker) Follow(ctx context.Context, watcher Watcher, codec Codec) error {
	if t.destroyed {
		return ErrDestroyed
	}
	ctx, cancel := context.WithCancel(ctx)
	changes, err := watcher.Watch(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	t.follows = append(t.follows, cancel)

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-changes:
				if !ok {
					return
				}
				if ctx.Err() != nil {
					return
				}
				cfg, err := LoadConfig(raw, codec)
				t.host.Post(func() {
					t.applyFollowed(cfg, err)
				})
			}
		}
	}()

	return nil
}

// applyFollowed runs on the notification context.
func (t *Tracker) applyFollowed(cfg Config, err error) {
	if t.destroyed {
		return
	}
	if err == nil {
		cfg.Container = t.cfg.Container
		cfg.Callbacks = t.cfg.Callbacks
		err = t.Reconfigure(cfg)
		if err != nil && !errors.Is(err, ErrConfiguration) {
			// Applied; geometry is retried on the next notification.
			err = nil
		}
	}
	if err != nil {
		t.recordError(err)
		t.emit(TrackerConfigRejected,
			KeyError.Field(err.Error()),
		)
		return
	}
	t.emit(TrackerConfigReloaded,
		KeyStart.Field(t.thresholds.Start),
		KeyEnd.Field(t.thresholds.End),
	)
}
