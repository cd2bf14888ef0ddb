package fixer

// State represents the presentation state of a tracked element.
type State int32

const (
	// StateDefault indicates the element is laid out normally. This is the
	// initial state and the state a tracker returns to on Destroy.
	StateDefault State = iota

	// StateFixed indicates the element is detached from normal flow and
	// pinned to the viewport.
	StateFixed

	// StateBottom indicates the element is pinned to the end of its
	// container.
	StateBottom

	// StateDisabled indicates tracking is suspended because the element is
	// taller than the viewport. Scroll evaluation is skipped until the
	// condition clears.
	StateDisabled
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateFixed:
		return "fixed"
	case StateBottom:
		return "bottom"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
