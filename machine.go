package fixer

// forward applies the absolute-position rules.
//
// The fixed window is (Start, End]; anything at or past End is bottom. The
// fixed check runs first, so an offset equal to End stays fixed. When the
// window is degenerate the fixed branch is unreachable and the result is
// bottom at or past End, default otherwise.
func forward(scrollTop int, th Thresholds) State {
	switch {
	case scrollTop > th.Start && scrollTop <= th.End:
		return StateFixed
	case scrollTop >= th.End:
		return StateBottom
	default:
		return StateDefault
	}
}

// reverse applies the direction-keyed rules. It returns current unchanged
// when the offset did not move and is at or past Start. It never returns
// StateBottom.
func reverse(scrollTop, previous int, th Thresholds, current State) State {
	switch {
	case previous > scrollTop && scrollTop >= th.Start:
		return StateFixed
	case previous < scrollTop || scrollTop < th.Start:
		return StateDefault
	default:
		if current == StateBottom {
			return StateDefault
		}
		return current
	}
}

// exceedsSensitivity reports whether a scroll delta is large enough to be
// evaluated. A zero sensitivity accepts every delta.
func exceedsSensitivity(scrollTop, previous, sensitivity int) bool {
	if sensitivity <= 0 {
		return true
	}
	delta := scrollTop - previous
	if delta < 0 {
		delta = -delta
	}
	return delta > sensitivity
}

// next computes the state for scrollTop given the runtime inputs.
func next(scrollTop, previous int, th Thresholds, reverseMode bool, current State) State {
	if reverseMode {
		return reverse(scrollTop, previous, th, current)
	}
	return forward(scrollTop, th)
}
