package fixer

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key tracker events.
type MetricsProvider interface {
	// OnStateChange is called when the tracker transitions between states.
	OnStateChange(from, to State)

	// OnEvaluate is called after every scroll evaluation with the resulting state.
	OnEvaluate(state State)

	// OnSkip is called when a notification does not lead to an evaluation.
	// Reason is "sensitivity", "disabled" or "geometry".
	OnSkip(reason string)

	// OnRecompute is called when thresholds are recomputed.
	OnRecompute(th Thresholds)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State) {}
func (NoOpMetricsProvider) OnEvaluate(_ State)       {}
func (NoOpMetricsProvider) OnSkip(_ string)          {}
func (NoOpMetricsProvider) OnRecompute(_ Thresholds) {}

// Skip reasons reported to MetricsProvider.OnSkip.
const (
	SkipSensitivity = "sensitivity"
	SkipDisabled    = "disabled"
	SkipGeometry    = "geometry"
)
