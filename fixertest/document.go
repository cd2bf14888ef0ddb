package fixertest

import (
	"sort"

	"github.com/zoobzio/fixer"
)

// Document is an in-memory fixer.Host. Notifications are delivered
// synchronously by the Scroll, Resize, Load, TouchStart, Focus and Blur
// methods; posted callbacks queue until RunPosted.
type Document struct {
	// Body is the document root. When nil, Root returns nil.
	Body *Node

	scrollTop int
	viewport  int
	nextID    int
	subs      map[fixer.Kind]map[int]func(fixer.Notification)
	posted    chan func()
}

// NewDocument creates a document with a body node and the given viewport height.
func NewDocument(viewportHeight int, body fixer.Box) *Document {
	return &Document{
		Body:     NewNode("body", body),
		viewport: viewportHeight,
		subs:     make(map[fixer.Kind]map[int]func(fixer.Notification)),
		posted:   make(chan func(), 64),
	}
}

// ScrollTop implements fixer.Host.
func (d *Document) ScrollTop() int {
	return d.scrollTop
}

// ViewportHeight implements fixer.Host.
func (d *Document) ViewportHeight() int {
	return d.viewport
}

// Root implements fixer.Host.
func (d *Document) Root() fixer.Node {
	if d.Body == nil {
		return nil
	}
	return d.Body
}

// Subscribe implements fixer.Host.
func (d *Document) Subscribe(kind fixer.Kind, fn func(fixer.Notification)) func() {
	if d.subs[kind] == nil {
		d.subs[kind] = make(map[int]func(fixer.Notification))
	}
	id := d.nextID
	d.nextID++
	d.subs[kind][id] = fn
	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(d.subs[kind], id)
	}
}

// Post implements fixer.Host. It is safe to call from any goroutine.
func (d *Document) Post(fn func()) {
	d.posted <- fn
}

// Posted returns the channel of posted callbacks, for tests that wait on
// work handed over from another goroutine.
func (d *Document) Posted() <-chan func() {
	return d.posted
}

// RunPosted runs every callback posted so far and returns how many ran.
func (d *Document) RunPosted() int {
	n := 0
	for {
		select {
		case fn := <-d.posted:
			fn()
			n++
		default:
			return n
		}
	}
}

// Subscribers returns the number of registrations for kind.
func (d *Document) Subscribers(kind fixer.Kind) int {
	return len(d.subs[kind])
}

// TotalSubscribers returns the number of registrations across all kinds.
func (d *Document) TotalSubscribers() int {
	total := 0
	for _, m := range d.subs {
		total += len(m)
	}
	return total
}

// Dispatch delivers n to every subscriber of its kind in subscription
// order. A subscriber removed during delivery is not called.
func (d *Document) Dispatch(n fixer.Notification) {
	ids := make([]int, 0, len(d.subs[n.Kind]))
	for id := range d.subs[n.Kind] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := d.subs[n.Kind][id]; ok {
			fn(n)
		}
	}
}

// Scroll sets the scroll offset and delivers a scroll notification.
func (d *Document) Scroll(y int) {
	d.scrollTop = y
	d.Dispatch(fixer.Notification{Kind: fixer.KindScroll})
}

// SetScrollTop sets the scroll offset without notifying.
func (d *Document) SetScrollTop(y int) {
	d.scrollTop = y
}

// Resize sets the viewport height and delivers a resize notification.
func (d *Document) Resize(height int) {
	d.viewport = height
	d.Dispatch(fixer.Notification{Kind: fixer.KindResize})
}

// Load delivers a load notification.
func (d *Document) Load() {
	d.Dispatch(fixer.Notification{Kind: fixer.KindLoad})
}

// TouchStart delivers a touch-start notification.
func (d *Document) TouchStart() {
	d.Dispatch(fixer.Notification{Kind: fixer.KindTouchStart})
}

// Focus delivers a focus notification targeting n.
func (d *Document) Focus(n *Node) {
	d.Dispatch(fixer.Notification{Kind: fixer.KindFocus, Target: n})
}

// Blur delivers a blur notification targeting n.
func (d *Document) Blur(n *Node) {
	d.Dispatch(fixer.Notification{Kind: fixer.KindBlur, Target: n})
}

var _ fixer.Host = (*Document)(nil)
