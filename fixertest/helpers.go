package fixertest

import (
	"testing"

	"github.com/zoobzio/fixer"
)

// Harness wires a Document, a Scheduler and a container/element pair whose
// derived activation window is [100, 500]: the container starts at 100 and
// is 450 tall, the element sits at its top and is 50 tall.
type Harness struct {
	Doc       *Document
	Sched     *Scheduler
	Container *Node
	Element   *Node
}

// NewHarness creates a harness with a 600px viewport.
func NewHarness() *Harness {
	doc := NewDocument(600, fixer.Box{Top: 0, Width: 1024, Height: 3000})
	container := doc.Body.Append(NewNode("section", fixer.Box{Top: 100, Width: 1024, Height: 450}))
	element := container.Append(NewNode("header", fixer.Box{Top: 100, Left: 24, Width: 976, Height: 50}))
	return &Harness{
		Doc:       doc,
		Sched:     NewScheduler(),
		Container: container,
		Element:   element,
	}
}

// Config returns fixer.DefaultConfig bound to the harness container.
func (h *Harness) Config() fixer.Config {
	cfg := fixer.DefaultConfig()
	cfg.Container = h.Container
	return cfg
}

// New creates a tracker over the harness element using the manual scheduler.
func (h *Harness) New(t *testing.T, cfg fixer.Config, opts ...fixer.Option) *fixer.Tracker {
	t.Helper()
	opts = append([]fixer.Option{fixer.WithScheduler(h.Sched)}, opts...)
	tr, err := fixer.New(h.Doc, h.Element, cfg, opts...)
	if err != nil {
		t.Fatalf("fixer.New failed: %v", err)
	}
	return tr
}

// ScrollTo scrolls the document and runs the resulting frame.
func (h *Harness) ScrollTo(y int) {
	h.Doc.Scroll(y)
	h.Sched.Flush()
}

// RequireState fails the test immediately if the tracker is not in the expected state.
func RequireState(t *testing.T, tr *fixer.Tracker, expected fixer.State) {
	t.Helper()
	if got := tr.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireClass fails the test if n does not carry class.
func RequireClass(t *testing.T, n *Node, class string) {
	t.Helper()
	if !n.HasClass(class) {
		t.Fatalf("expected %s to have class %q, has %v", n.Name, class, n.Classes())
	}
}

// RequireNoClass fails the test if n carries class.
func RequireNoClass(t *testing.T, n *Node, class string) {
	t.Helper()
	if n.HasClass(class) {
		t.Fatalf("expected %s not to have class %q, has %v", n.Name, class, n.Classes())
	}
}

// Recorder collects tracker callbacks in order.
type Recorder struct {
	Events      []string
	Transitions []fixer.Transition
	Scrolls     []fixer.ScrollEvent
	Resizes     []fixer.ResizeEvent
}

// Install sets every callback in cfg to record into r and returns cfg.
func (r *Recorder) Install(cfg fixer.Config) fixer.Config {
	cfg.Callbacks.OnFixed = func(*fixer.Tracker) { r.Events = append(r.Events, "fixed") }
	cfg.Callbacks.OnBottom = func(*fixer.Tracker) { r.Events = append(r.Events, "bottom") }
	cfg.Callbacks.OnReset = func(*fixer.Tracker) { r.Events = append(r.Events, "reset") }
	cfg.Callbacks.OnDisable = func(*fixer.Tracker) { r.Events = append(r.Events, "disable") }
	cfg.Callbacks.OnChangeState = func(tr fixer.Transition) { r.Transitions = append(r.Transitions, tr) }
	cfg.Callbacks.OnScroll = func(e fixer.ScrollEvent) { r.Scrolls = append(r.Scrolls, e) }
	cfg.Callbacks.OnResize = func(e fixer.ResizeEvent) { r.Resizes = append(r.Resizes, e) }
	return cfg
}
