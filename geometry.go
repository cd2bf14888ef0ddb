package fixer

// Thresholds are the scroll offsets bounding the activation window.
type Thresholds struct {
	Start int
	End   int
}

// Degenerate reports whether End lies before Start. A degenerate window
// can never produce StateFixed in forward mode.
func (t Thresholds) Degenerate() bool {
	return t.End < t.Start
}

// computeThresholds converts config and measured geometry into thresholds.
//
// The end threshold is always relative to the start threshold, so the
// offset is applied to it twice: once through start and once directly.
func computeThresholds(cfg Config, element, container Box) Thresholds {
	var start int
	switch {
	case cfg.Start == nil:
		start = element.Top
	case *cfg.Start < 0:
		start = element.Top + *cfg.Start
	default:
		start = container.Top + *cfg.Start
	}
	start -= cfg.Offset

	var end int
	if cfg.End == nil {
		end = container.Height - element.Height
	} else {
		end = *cfg.End
	}
	end += start
	end -= cfg.Offset

	return Thresholds{Start: start, End: end}
}

// measure reads element and container geometry in one pass.
func measure(element, container Node) (Box, Box, error) {
	eb, err := element.Measure()
	if err != nil {
		return Box{}, Box{}, err
	}
	cb, err := container.Measure()
	if err != nil {
		return Box{}, Box{}, err
	}
	return eb, cb, nil
}
