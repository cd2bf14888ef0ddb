package fixer

import "testing"

func TestTrackerCreated(t *testing.T) {
	if TrackerCreated.Name() != "fixer.tracker.created" {
		t.Errorf("expected name 'fixer.tracker.created', got %q", TrackerCreated.Name())
	}
}

func TestTrackerDestroyed(t *testing.T) {
	if TrackerDestroyed.Name() != "fixer.tracker.destroyed" {
		t.Errorf("expected name 'fixer.tracker.destroyed', got %q", TrackerDestroyed.Name())
	}
}

func TestTrackerStateChanged(t *testing.T) {
	if TrackerStateChanged.Name() != "fixer.tracker.state.changed" {
		t.Errorf("expected name 'fixer.tracker.state.changed', got %q", TrackerStateChanged.Name())
	}
}

func TestTrackerEvaluated(t *testing.T) {
	if TrackerEvaluated.Name() != "fixer.tracker.evaluated" {
		t.Errorf("expected name 'fixer.tracker.evaluated', got %q", TrackerEvaluated.Name())
	}
}

func TestTrackerEvaluationSkipped(t *testing.T) {
	if TrackerEvaluationSkipped.Name() != "fixer.tracker.evaluation.skipped" {
		t.Errorf("expected name 'fixer.tracker.evaluation.skipped', got %q", TrackerEvaluationSkipped.Name())
	}
}

func TestTrackerThresholdsComputed(t *testing.T) {
	if TrackerThresholdsComputed.Name() != "fixer.tracker.thresholds.computed" {
		t.Errorf("expected name 'fixer.tracker.thresholds.computed', got %q", TrackerThresholdsComputed.Name())
	}
}

func TestTrackerResizeDebounced(t *testing.T) {
	if TrackerResizeDebounced.Name() != "fixer.tracker.resize.debounced" {
		t.Errorf("expected name 'fixer.tracker.resize.debounced', got %q", TrackerResizeDebounced.Name())
	}
}

func TestTrackerConfigReloaded(t *testing.T) {
	if TrackerConfigReloaded.Name() != "fixer.tracker.config.reloaded" {
		t.Errorf("expected name 'fixer.tracker.config.reloaded', got %q", TrackerConfigReloaded.Name())
	}
}

func TestTrackerConfigRejected(t *testing.T) {
	if TrackerConfigRejected.Name() != "fixer.tracker.config.rejected" {
		t.Errorf("expected name 'fixer.tracker.config.rejected', got %q", TrackerConfigRejected.Name())
	}
}
