package fixer

import "testing"

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnStateChange(StateDefault, StateFixed)
	m.OnEvaluate(StateFixed)
	m.OnSkip(SkipSensitivity)
	m.OnRecompute(Thresholds{Start: 100, End: 500})
}

type countingMetrics struct {
	NoOpMetricsProvider
	changes int
}

func (m *countingMetrics) OnStateChange(_, _ State) { m.changes++ }

func TestNoOpMetricsProvider_Embeddable(t *testing.T) {
	m := &countingMetrics{}
	var p MetricsProvider = m
	p.OnStateChange(StateDefault, StateFixed)
	p.OnEvaluate(StateFixed)
	if m.changes != 1 {
		t.Errorf("expected 1 change, got %d", m.changes)
	}
}
