package fixer

// Box is a layout measurement of a node in document coordinates.
// Heights and widths are content-box metrics; margins are never included.
type Box struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// StyleProperty identifies an inline style override the tracker may apply.
type StyleProperty int

const (
	// StylePaddingTop is the container's top padding, set while the element
	// is fixed to compensate for the element leaving normal flow.
	StylePaddingTop StyleProperty = iota

	// StyleWidth is the element's width, frozen while fixed.
	StyleWidth

	// StyleLeft is the element's left offset, frozen while fixed.
	StyleLeft
)

// String returns the CSS property name.
func (p StyleProperty) String() string {
	switch p {
	case StylePaddingTop:
		return "padding-top"
	case StyleWidth:
		return "width"
	case StyleLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Node is a layout-queryable entity owned by the host: the tracked element
// or its container.
type Node interface {
	// Measure returns the node's current geometry. Implementations return
	// ErrGeometryUnavailable (or another error) when layout cannot be read.
	Measure() (Box, error)

	// AddClass adds a marker class. Adding a present class is a no-op.
	AddClass(name string)

	// RemoveClass removes a marker class. Removing an absent class is a no-op.
	RemoveClass(name string)

	// HasClass reports whether the marker class is present.
	HasClass(name string) bool

	// SetStyle applies an inline style override in pixels.
	SetStyle(property StyleProperty, px int)

	// ClearStyle removes an inline style override.
	ClearStyle(property StyleProperty)

	// Contains reports whether other is this node or one of its descendants.
	Contains(other Node) bool
}

// Kind identifies a notification delivered by the host.
type Kind int

const (
	// KindScroll is delivered when the viewport scrolls.
	KindScroll Kind = iota

	// KindResize is delivered when the viewport is resized.
	KindResize

	// KindLoad is delivered once the document has finished loading.
	KindLoad

	// KindTouchStart is delivered when a touch interaction begins.
	KindTouchStart

	// KindFocus is delivered when a node receives input focus.
	KindFocus

	// KindBlur is delivered when a node loses input focus.
	KindBlur

	// KindUpdate marks evaluations requested programmatically through
	// Tracker.Update or Tracker.Reconfigure. Hosts never deliver it.
	KindUpdate
)

// String returns the string representation of the notification kind.
func (k Kind) String() string {
	switch k {
	case KindScroll:
		return "scroll"
	case KindResize:
		return "resize"
	case KindLoad:
		return "load"
	case KindTouchStart:
		return "touchstart"
	case KindFocus:
		return "focus"
	case KindBlur:
		return "blur"
	case KindUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Notification is a single event delivered by the host.
type Notification struct {
	Kind Kind

	// Target is the node the notification concerns. It is set for focus and
	// blur notifications and may be nil otherwise.
	Target Node
}

// Host is the environment a tracker runs in. It exposes the viewport, the
// document root and a notification source.
//
// All notifications must be delivered on a single context, and Post must
// schedule fn onto that same context. Trackers perform no locking.
type Host interface {
	// ScrollTop returns the current vertical scroll offset of the viewport.
	ScrollTop() int

	// ViewportHeight returns the current height of the viewport.
	ViewportHeight() int

	// Root returns the document root, used as the container when none is
	// configured. It may return nil if the host has no document.
	Root() Node

	// Subscribe registers fn for notifications of the given kind and returns
	// a function that removes the registration. The returned function must
	// be safe to call more than once.
	Subscribe(kind Kind, fn func(Notification)) (unsubscribe func())

	// Post runs fn on the notification context.
	Post(fn func())
}
