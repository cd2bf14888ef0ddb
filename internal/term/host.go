// Package term hosts fixer trackers in a terminal. A Page of nested blocks is
// laid out as scrollable rows, and tcell events are translated into tracker
// notifications.
package term

import (
	"context"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zoobzio/fixer"
)

// WheelStep is the number of rows scrolled per mouse wheel notch.
const WheelStep = 3

// Screen is the subset of tcell.Screen the host drives.
type Screen interface {
	Canvas
	Size() (width, height int)
	Clear()
	Show()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

// stop is posted to end Run when its context is canceled.
type stop struct{}

// Host implements fixer.Host over a terminal screen. Every notification and
// every posted function runs on the goroutine calling Run.
type Host struct {
	screen    Screen
	page      *Page
	scrollTop int
	focused   *Block

	nextID int
	subs   map[fixer.Kind]map[int]func(fixer.Notification)
}

// NewHost creates a host rendering page onto screen. The page is laid out
// immediately so trackers can measure it before Run starts.
func NewHost(screen Screen, page *Page) *Host {
	h := &Host{
		screen: screen,
		page:   page,
		subs:   make(map[fixer.Kind]map[int]func(fixer.Notification)),
	}
	h.layout()
	return h
}

// ScrollTop implements fixer.Host.
func (h *Host) ScrollTop() int {
	return h.scrollTop
}

// ViewportHeight implements fixer.Host.
func (h *Host) ViewportHeight() int {
	_, height := h.screen.Size()
	return height
}

// Root implements fixer.Host.
func (h *Host) Root() fixer.Node {
	if h.page.Root == nil {
		return nil
	}
	return h.page.Root
}

// Subscribe implements fixer.Host.
func (h *Host) Subscribe(kind fixer.Kind, fn func(fixer.Notification)) func() {
	if h.subs[kind] == nil {
		h.subs[kind] = make(map[int]func(fixer.Notification))
	}
	id := h.nextID
	h.nextID++
	h.subs[kind][id] = fn
	return func() {
		delete(h.subs[kind], id)
	}
}

// Post implements fixer.Host. fn runs on the event loop. When the event
// queue is full the post is retried until it is accepted.
func (h *Host) Post(fn func()) {
	if err := h.screen.PostEvent(tcell.NewEventInterrupt(fn)); err == nil {
		return
	}
	go func() {
		for h.screen.PostEvent(tcell.NewEventInterrupt(fn)) != nil {
			time.Sleep(time.Millisecond)
		}
	}()
}

// Run renders the page, delivers the load notification and processes
// screen events until the user quits or ctx is canceled.
func (h *Host) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(stop{})) //nolint:errcheck // Screen may already be finalized
	}()

	h.Refresh()
	h.dispatch(fixer.Notification{Kind: fixer.KindLoad})

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if h.Handle(ev) {
			return ctx.Err()
		}
	}
}

// Handle processes a single screen event and redraws. It reports whether
// the event asks the host to stop.
func (h *Host) Handle(ev tcell.Event) bool {
	quit := false

	switch e := ev.(type) {
	case *tcell.EventResize:
		h.layout()
		h.ScrollTo(h.scrollTop)
		h.dispatch(fixer.Notification{Kind: fixer.KindResize})

	case *tcell.EventKey:
		quit = h.handleKey(e)

	case *tcell.EventMouse:
		h.handleMouse(e)

	case *tcell.EventInterrupt:
		switch d := e.Data().(type) {
		case func():
			d()
		case stop:
			quit = true
		}
	}

	if !quit {
		h.Refresh()
	}
	return quit
}

func (h *Host) handleKey(e *tcell.EventKey) bool {
	page := h.ViewportHeight() - 1
	if page < 1 {
		page = 1
	}

	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		h.ScrollBy(-1)
	case tcell.KeyDown:
		h.ScrollBy(1)
	case tcell.KeyPgUp:
		h.ScrollBy(-page)
	case tcell.KeyPgDn:
		h.ScrollBy(page)
	case tcell.KeyHome:
		h.ScrollTo(0)
	case tcell.KeyEnd:
		h.ScrollTo(h.page.Rows())
	case tcell.KeyTab:
		h.focusNext()
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			return true
		case 'j':
			h.ScrollBy(1)
		case 'k':
			h.ScrollBy(-1)
		case ' ':
			h.ScrollBy(page)
		}
	}
	return false
}

func (h *Host) handleMouse(e *tcell.EventMouse) {
	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		h.ScrollBy(-WheelStep)
	case buttons&tcell.WheelDown != 0:
		h.ScrollBy(WheelStep)
	case buttons&tcell.Button1 != 0:
		h.dispatch(fixer.Notification{Kind: fixer.KindTouchStart})
		_, y := e.Position()
		h.Focus(h.page.BlockAt(y, h.scrollTop))
	}
}

// ScrollBy scrolls by delta rows.
func (h *Host) ScrollBy(delta int) {
	h.ScrollTo(h.scrollTop + delta)
}

// ScrollTo scrolls to row y, clamped to the document, and delivers a scroll
// notification if the offset changed.
func (h *Host) ScrollTo(y int) {
	if m := h.page.MaxScroll(h.ViewportHeight()); y > m {
		y = m
	}
	if y < 0 {
		y = 0
	}
	if y == h.scrollTop {
		return
	}
	h.scrollTop = y
	h.dispatch(fixer.Notification{Kind: fixer.KindScroll})
}

// Focus moves input focus to the nearest focusable block enclosing b.
// A nil or unfocusable b clears focus.
func (h *Host) Focus(b *Block) {
	for b != nil && !b.Focusable {
		b = b.parent
	}
	if b == h.focused {
		return
	}
	if h.focused != nil {
		prev := h.focused
		h.focused = nil
		h.dispatch(fixer.Notification{Kind: fixer.KindBlur, Target: prev})
	}
	h.focused = b
	if b != nil {
		h.dispatch(fixer.Notification{Kind: fixer.KindFocus, Target: b})
	}
}

// Focused returns the block holding input focus, or nil.
func (h *Host) Focused() *Block {
	return h.focused
}

func (h *Host) focusNext() {
	blocks := h.page.Focusables()
	if len(blocks) == 0 {
		return
	}
	next := blocks[0]
	for i, b := range blocks {
		if b == h.focused && i+1 < len(blocks) {
			next = blocks[i+1]
		}
	}
	h.Focus(next)
}

// Refresh lays the page out again and redraws it. Markers applied by a
// tracker take effect on the next refresh.
func (h *Host) Refresh() {
	h.layout()
	h.Render()
}

// Render redraws the visible part of the page.
func (h *Host) Render() {
	h.screen.Clear()
	_, height := h.screen.Size()
	h.page.Draw(h.screen, h.scrollTop, height)
	h.screen.Show()
}

func (h *Host) layout() {
	width, _ := h.screen.Size()
	h.page.Layout(width)
}

// dispatch delivers n to the subscribers of its kind in subscription order.
// A subscriber removed during delivery is not called.
func (h *Host) dispatch(n fixer.Notification) {
	ids := make([]int, 0, len(h.subs[n.Kind]))
	for id := range h.subs[n.Kind] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := h.subs[n.Kind][id]; ok {
			fn(n)
		}
	}
}

var _ fixer.Host = (*Host)(nil)
