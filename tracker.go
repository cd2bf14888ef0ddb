package fixer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Tracker follows a viewport's scroll offset and drives one element through
// the default, fixed, bottom and disabled states.
//
// A Tracker is not safe for concurrent use. Every method, and every
// notification delivered by the Host, must run on the host's notification
// context.
type Tracker struct {
	id        string
	host      Host
	element   Node
	container Node
	cfg       Config
	scheduler Scheduler
	metrics   MetricsProvider

	state             State
	scrollTop         int
	previousScrollTop int
	thresholds        Thresholds
	geometry          Box
	stale             bool
	refresh           bool

	frameCancel  func()
	pending      Notification
	resizeCancel func()
	subs         []func()
	follows      []func()
	inputWired   bool
	overrides    map[StyleProperty]Node

	seq       uint64
	destroyed bool

	lastError    error
	errorHistory *errorRing
}

// New creates a tracker for element and wires it to the host's notifications.
//
// New fails with an error wrapping ErrConfiguration when host or element is
// nil, the container resolves to nothing, or cfg fails validation. Failure to
// measure geometry is not fatal: the thresholds are computed on the next
// notification instead.
//
// Example:
//
//	cfg := fixer.DefaultConfig()
//	cfg.AutoPadding = true
//	cfg.Callbacks.OnFixed = func(t *fixer.Tracker) {
//	    log.Printf("header fixed at %d", t.ScrollTop())
//	}
//
//	tracker, err := fixer.New(host, header, cfg)
//	if err != nil {
//	    return err
//	}
//	defer tracker.Destroy()
func New(host Host, element Node, cfg Config, opts ...Option) (*Tracker, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: host is required", ErrConfiguration)
	}
	if element == nil {
		return nil, fmt.Errorf("%w: element is required", ErrConfiguration)
	}

	o := &options{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(o)
	}

	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	container, err := resolveContainer(host, cfg)
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		id:           uuid.NewString(),
		host:         host,
		element:      element,
		container:    container,
		cfg:          cfg,
		scheduler:    o.scheduler,
		metrics:      o.metrics,
		overrides:    make(map[StyleProperty]Node),
		errorHistory: newErrorRing(o.errorHistory),
	}
	if t.scheduler == nil {
		t.scheduler = NewClockScheduler(host.Post).Clock(o.clock)
	}
	if t.metrics == nil {
		t.metrics = NoOpMetricsProvider{}
	}

	_ = t.recompute() //nolint:errcheck // Stored via recordError and retried on the next notification

	t.container.AddClass(t.cfg.Classes.Container)
	t.element.AddClass(t.cfg.Classes.Element)
	t.wire()

	t.emit(TrackerCreated,
		KeyStart.Field(t.thresholds.Start),
		KeyEnd.Field(t.thresholds.End),
	)

	if t.cfg.Callbacks.AfterSetup != nil {
		t.cfg.Callbacks.AfterSetup(t)
	}

	return t, nil
}

// resolveContainer returns the configured container or the host's root.
func resolveContainer(host Host, cfg Config) (Node, error) {
	if cfg.Container != nil {
		return cfg.Container, nil
	}
	if root := host.Root(); root != nil {
		return root, nil
	}
	return nil, fmt.Errorf("%w: container resolves to nothing", ErrConfiguration)
}

// ID returns the tracker's unique identifier, attached to every signal it emits.
func (t *Tracker) ID() string {
	return t.id
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Start returns the activation start threshold.
func (t *Tracker) Start() int {
	return t.thresholds.Start
}

// End returns the activation end threshold.
func (t *Tracker) End() int {
	return t.thresholds.End
}

// Thresholds returns both activation thresholds.
func (t *Tracker) Thresholds() Thresholds {
	return t.thresholds
}

// ScrollTop returns the last evaluated scroll offset.
func (t *Tracker) ScrollTop() int {
	return t.scrollTop
}

// Config returns a copy of the active configuration, with class names resolved.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Element returns the tracked element.
func (t *Tracker) Element() Node {
	return t.element
}

// Container returns the resolved container.
func (t *Tracker) Container() Node {
	return t.container
}

// Destroyed reports whether Destroy has been called.
func (t *Tracker) Destroyed() bool {
	return t.destroyed
}

// LastError returns the last error encountered, or nil if the last
// measurement succeeded.
func (t *Tracker) LastError() error {
	return t.lastError
}

// ErrorHistory returns the recent error history, oldest first.
// Returns nil if error history is not enabled (see WithErrorHistory).
func (t *Tracker) ErrorHistory() []error {
	return t.errorHistory.all()
}

// Update recomputes the thresholds, optionally replacing the start and end
// configuration first, then re-evaluates the current scroll offset. The
// sensitivity gate does not apply to this evaluation.
func (t *Tracker) Update(bounds ...Bound) error {
	if t.destroyed {
		return ErrDestroyed
	}
	for _, b := range bounds {
		b(&t.cfg)
	}
	return t.update(Notification{Kind: KindUpdate})
}

func (t *Tracker) update(n Notification) error {
	if err := t.recompute(); err != nil {
		t.skip(n, SkipGeometry, err)
		return err
	}
	t.evaluate(n, true)
	return nil
}

// Reconfigure replaces the configuration. Markers are moved to the new class
// names, notifications are rewired, and the thresholds are recomputed and
// re-evaluated. The current state is kept unless the re-evaluation changes
// it. AfterSetup is not invoked again.
//
// A geometry error is returned after the new config has been applied; the
// thresholds are then retried on the next notification.
func (t *Tracker) Reconfigure(cfg Config) error {
	if t.destroyed {
		return ErrDestroyed
	}
	cfg = cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	container, err := resolveContainer(t.host, cfg)
	if err != nil {
		return err
	}

	t.unwire()
	t.stripMarkers()

	t.cfg = cfg
	t.container = container
	t.container.AddClass(t.cfg.Classes.Container)
	t.element.AddClass(t.cfg.Classes.Element)
	t.applyMarkers(StateDefault, t.state)
	t.wire()

	return t.update(Notification{Kind: KindUpdate})
}

// Destroy returns the tracker to the default state, running its side
// effects, then removes its markers and detaches every notification.
// Destroy is idempotent and may be called from within any callback.
func (t *Tracker) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true

	t.transition(StateDefault)

	t.unwire()
	for _, cancel := range t.follows {
		cancel()
	}
	t.follows = nil
	t.stripMarkers()

	t.emit(TrackerDestroyed,
		KeyState.Field(t.state.String()),
	)
}

// wire subscribes to the notifications enabled by the config.
func (t *Tracker) wire() {
	if t.cfg.ScrollEvent {
		t.subscribe(KindScroll, t.onScroll)
	}
	t.subscribe(KindTouchStart, t.onTouchStart)
	if t.cfg.AutoLoad {
		t.subscribe(KindLoad, t.onLoad)
	}
	if t.cfg.ResizeEvent {
		t.subscribe(KindResize, t.onResize)
	}
}

// unwire drops every subscription and cancels pending work.
func (t *Tracker) unwire() {
	for _, unsubscribe := range t.subs {
		unsubscribe()
	}
	t.subs = nil
	t.inputWired = false

	if t.frameCancel != nil {
		t.frameCancel()
		t.frameCancel = nil
	}
	if t.resizeCancel != nil {
		t.resizeCancel()
		t.resizeCancel = nil
	}
}

func (t *Tracker) subscribe(kind Kind, fn func(Notification)) {
	t.subs = append(t.subs, t.host.Subscribe(kind, fn))
}

func (t *Tracker) onScroll(n Notification) {
	t.requestFrame(n)
}

func (t *Tracker) onLoad(n Notification) {
	t.refresh = true
	t.requestFrame(n)
}

// requestFrame coalesces notifications into a single evaluation at the next
// frame. Only the latest notification is kept.
func (t *Tracker) requestFrame(n Notification) {
	if t.destroyed {
		return
	}
	t.pending = n
	if t.frameCancel != nil {
		return
	}
	t.frameCancel = t.scheduler.Frame(t.runFrame)
}

func (t *Tracker) runFrame() {
	t.frameCancel = nil
	if t.destroyed {
		return
	}
	n := t.pending
	t.pending = Notification{}

	if t.stale || t.refresh {
		t.refresh = false
		if err := t.recompute(); err != nil {
			t.skip(n, SkipGeometry, err)
			return
		}
	}
	t.evaluate(n, false)
}

// onResize restarts the debounce timer.
func (t *Tracker) onResize(n Notification) {
	if t.destroyed {
		return
	}
	if t.resizeCancel != nil {
		t.resizeCancel()
	}
	t.resizeCancel = t.scheduler.After(t.cfg.ResizeDebounce(), func() {
		t.resizeCancel = nil
		t.handleResize(n)
	})
}

func (t *Tracker) handleResize(n Notification) {
	if t.destroyed {
		return
	}
	t.emit(TrackerResizeDebounced,
		KeyDebounce.Field(t.cfg.ResizeDebounce()),
	)

	switch {
	case t.cfg.AutoUpdate:
		_ = t.update(n) //nolint:errcheck // Stored via recordError
	case t.cfg.AutoDisable && !t.stale:
		t.evaluate(n, true)
	}
	if t.destroyed {
		return
	}

	if t.cfg.Callbacks.OnResize != nil {
		t.cfg.Callbacks.OnResize(ResizeEvent{
			Tracker:      t,
			Notification: n,
			Start:        t.thresholds.Start,
			End:          t.thresholds.End,
		})
	}
}

// onTouchStart wires focus tracking the first time a touch begins.
func (t *Tracker) onTouchStart(_ Notification) {
	if t.inputWired || t.destroyed {
		return
	}
	t.inputWired = true
	t.subscribe(KindFocus, t.onFocus)
	t.subscribe(KindBlur, t.onFocus)
}

// onFocus marks the container while a node inside it has input focus.
func (t *Tracker) onFocus(n Notification) {
	if n.Target == nil || !t.container.Contains(n.Target) {
		return
	}
	if n.Kind == KindFocus {
		t.container.AddClass(t.cfg.Classes.Input)
	} else {
		t.container.RemoveClass(t.cfg.Classes.Input)
	}
}

// recompute measures geometry and refreshes the thresholds.
func (t *Tracker) recompute() error {
	eb, cb, err := measure(t.element, t.container)
	if err != nil {
		t.stale = true
		err = fmt.Errorf("measure: %w", err)
		t.recordError(err)
		return err
	}

	t.geometry = eb
	t.thresholds = computeThresholds(t.cfg, eb, cb)
	t.stale = false
	t.lastError = nil
	t.errorHistory.clear()

	t.emit(TrackerThresholdsComputed,
		KeyStart.Field(t.thresholds.Start),
		KeyEnd.Field(t.thresholds.End),
	)
	t.metrics.OnRecompute(t.thresholds)
	return nil
}

// evaluate reads the scroll offset and applies the state machine. When force
// is set the sensitivity gate is bypassed.
func (t *Tracker) evaluate(n Notification, force bool) {
	if t.destroyed {
		return
	}
	scrollTop := t.host.ScrollTop()

	if t.cfg.AutoDisable && t.geometry.Height >= t.host.ViewportHeight() {
		t.transition(StateDisabled)
		t.metrics.OnSkip(SkipDisabled)
		return
	}
	if t.state == StateDisabled {
		t.transition(StateDefault)
		if t.destroyed {
			return
		}
		force = true
	}

	if !force && !exceedsSensitivity(scrollTop, t.previousScrollTop, t.cfg.Sensitivity) {
		t.metrics.OnSkip(SkipSensitivity)
		return
	}

	t.scrollTop = scrollTop
	to := next(scrollTop, t.previousScrollTop, t.thresholds, t.cfg.Reverse, t.state)
	t.previousScrollTop = scrollTop

	t.transition(to)
	if t.destroyed {
		return
	}

	t.emit(TrackerEvaluated,
		KeyNotification.Field(n.Kind.String()),
		KeyScrollTop.Field(scrollTop),
		KeyState.Field(t.state.String()),
	)
	t.metrics.OnEvaluate(t.state)

	if t.cfg.Callbacks.OnScroll != nil {
		t.cfg.Callbacks.OnScroll(ScrollEvent{
			Tracker:      t,
			Notification: n,
			State:        t.state,
			ScrollTop:    scrollTop,
		})
	}
}

// skip records an evaluation cycle that could not run.
func (t *Tracker) skip(n Notification, reason string, err error) {
	t.emit(TrackerEvaluationSkipped,
		KeyNotification.Field(n.Kind.String()),
		KeyError.Field(err.Error()),
	)
	t.metrics.OnSkip(reason)
}

// transition moves to the given state. State and markers are updated before
// any callback runs. A callback that triggers a nested transition (or
// Destroy) supersedes the remaining callbacks of this one.
func (t *Tracker) transition(to State) {
	from := t.state
	if from == to {
		return
	}
	t.seq++
	seq := t.seq

	t.state = to
	t.applyMarkers(from, to)

	t.emit(TrackerStateChanged,
		KeyOldState.Field(from.String()),
		KeyNewState.Field(to.String()),
	)
	t.metrics.OnStateChange(from, to)

	cb := t.cfg.Callbacks
	var hook func(*Tracker)
	switch to {
	case StateFixed:
		hook = cb.OnFixed
	case StateBottom:
		hook = cb.OnBottom
	case StateDefault:
		hook = cb.OnReset
	case StateDisabled:
		hook = cb.OnDisable
	}
	if hook != nil {
		hook(t)
		if t.seq != seq {
			return
		}
	}

	if cb.OnChangeState != nil {
		cb.OnChangeState(Transition{Tracker: t, From: from, To: to})
	}
}

// applyMarkers updates classes and style overrides for entering to.
func (t *Tracker) applyMarkers(from, to State) {
	c := t.cfg.Classes
	switch to {
	case StateFixed:
		t.container.RemoveClass(c.Reset)
		t.container.RemoveClass(c.Bottom)
		t.container.RemoveClass(c.Disabled)
		t.container.AddClass(c.Fixed)
		if t.cfg.AutoPadding {
			t.override(t.container, StylePaddingTop, t.geometry.Height)
		}
		if t.cfg.AutoWidth {
			t.override(t.element, StyleWidth, t.geometry.Width)
		}
		if t.cfg.AutoPosition {
			t.override(t.element, StyleLeft, t.geometry.Left)
		}

	case StateBottom:
		t.container.RemoveClass(c.Reset)
		t.container.RemoveClass(c.Fixed)
		t.container.RemoveClass(c.Disabled)
		t.container.AddClass(c.Bottom)
		t.clearOverride(StyleWidth)
		t.clearOverride(StyleLeft)

	case StateDefault:
		t.container.RemoveClass(c.Fixed)
		t.container.RemoveClass(c.Bottom)
		t.container.RemoveClass(c.Disabled)
		t.container.RemoveClass(c.Reset)
		t.clearOverrides()
		if from == StateFixed {
			t.container.AddClass(c.Reset)
		}

	case StateDisabled:
		t.container.RemoveClass(c.Fixed)
		t.container.RemoveClass(c.Bottom)
		t.container.RemoveClass(c.Reset)
		t.clearOverrides()
		t.container.AddClass(c.Disabled)
	}
}

// stripMarkers removes every class and override the tracker applied.
func (t *Tracker) stripMarkers() {
	c := t.cfg.Classes
	for _, name := range []string{c.Container, c.Input, c.Fixed, c.Bottom, c.Reset, c.Disabled} {
		t.container.RemoveClass(name)
	}
	t.element.RemoveClass(c.Element)
	t.clearOverrides()
}

func (t *Tracker) override(node Node, p StyleProperty, px int) {
	node.SetStyle(p, px)
	t.overrides[p] = node
}

func (t *Tracker) clearOverride(p StyleProperty) {
	if node, ok := t.overrides[p]; ok {
		node.ClearStyle(p)
		delete(t.overrides, p)
	}
}

func (t *Tracker) clearOverrides() {
	for _, p := range []StyleProperty{StylePaddingTop, StyleWidth, StyleLeft} {
		t.clearOverride(p)
	}
}

// recordError stores an error and adds it to the error history.
func (t *Tracker) recordError(err error) {
	t.lastError = err
	t.errorHistory.push(err)
}

// emit sends a signal tagged with the tracker's ID.
func (t *Tracker) emit(signal capitan.Signal, fields ...capitan.Field) {
	all := make([]capitan.Field, 0, len(fields)+1)
	all = append(all, KeyTracker.Field(t.id))
	all = append(all, fields...)
	capitan.Emit(context.Background(), signal, all...)
}
