/*
Package fixer tracks a viewport's scroll offset and pins an element while its
container is in view.

A Tracker drives one element through four states. It stays in Default above
the activation window, becomes Fixed inside it, and rests at Bottom once the
container has scrolled past. Disabled is used when the element is too tall for
the viewport. Every change is reflected as marker classes on the container,
optional style overrides, user callbacks and capitan signals.

fixer owns no document model. The environment is supplied through the Host
and Node interfaces: a browser bridge, a terminal UI (see internal/term) or
the in-memory fakes in fixertest.

# Basic Usage

	cfg := fixer.DefaultConfig()
	cfg.Container = section
	cfg.AutoPadding = true
	cfg.Callbacks.OnFixed = func(t *fixer.Tracker) {
	    log.Printf("pinned at %d", t.ScrollTop())
	}

	tracker, err := fixer.New(host, header, cfg)
	if err != nil {
	    return err
	}
	defer tracker.Destroy()

# Activation Window

The window [Start, End] is derived from geometry unless overridden:

	Start = element top                        (Config.Start nil)
	Start = element top + Start                (Config.Start < 0)
	Start = container top + Start              (Config.Start >= 0)
	End   = container height - element height  (Config.End nil)
	End   = Config.End                         (otherwise)

End is then measured from Start, and Offset is subtracted from both. Update
recomputes the window, optionally replacing either bound:

	tracker.Update(fixer.StartAt(0), fixer.DerivedEnd())

# Modes

In the default mode the element is Fixed for Start < offset <= End and Bottom
beyond End. In reverse mode the element is only Fixed while scrolling upward
below Start, and Bottom is never entered.

# Scheduling

Scroll and load notifications are coalesced into one evaluation per frame.
Resize notifications are debounced. Both go through a Scheduler; the default
ClockScheduler hands its work back to the host through Host.Post, so a
Tracker never needs locking.

# Hot Reload

A tracker can follow a config document from any Watcher:

	err := tracker.Follow(ctx, fixer.NewFileWatcher("header.yaml"), fixer.YAMLCodec{})

Documents that fail to decode or validate are rejected and the current config
stays in effect.

# Observability

Trackers emit capitan signals tagged with their ID:

	capitan.Hook(fixer.TrackerStateChanged, func(_ context.Context, e *capitan.Event) {
	    from, _ := fixer.KeyOldState.From(e)
	    to, _ := fixer.KeyNewState.From(e)
	    log.Printf("%s -> %s", from, to)
	})

A MetricsProvider can be attached with WithMetrics.
*/
package fixer
