package fixer

import "github.com/zoobzio/capitan"

// Tracker lifecycle signals.
var (
	// TrackerCreated is emitted when a tracker finishes setup.
	TrackerCreated = capitan.NewSignal(
		"fixer.tracker.created",
		"Tracker created and wired",
	)

	// TrackerDestroyed is emitted when a tracker is destroyed.
	TrackerDestroyed = capitan.NewSignal(
		"fixer.tracker.destroyed",
		"Tracker destroyed",
	)

	// TrackerStateChanged is emitted when a tracker transitions between states.
	TrackerStateChanged = capitan.NewSignal(
		"fixer.tracker.state.changed",
		"Tracker state transition",
	)
)

// Evaluation signals.
var (
	// TrackerEvaluated is emitted after every scroll evaluation.
	TrackerEvaluated = capitan.NewSignal(
		"fixer.tracker.evaluated",
		"Scroll offset evaluated",
	)

	// TrackerEvaluationSkipped is emitted when an evaluation cycle is skipped
	// because geometry could not be read.
	TrackerEvaluationSkipped = capitan.NewSignal(
		"fixer.tracker.evaluation.skipped",
		"Evaluation skipped",
	)

	// TrackerThresholdsComputed is emitted when the activation window is
	// recomputed.
	TrackerThresholdsComputed = capitan.NewSignal(
		"fixer.tracker.thresholds.computed",
		"Activation thresholds computed",
	)

	// TrackerResizeDebounced is emitted when a debounced resize is handled.
	TrackerResizeDebounced = capitan.NewSignal(
		"fixer.tracker.resize.debounced",
		"Debounced resize handled",
	)
)

// Configuration reload signals.
var (
	// TrackerConfigReloaded is emitted when a followed config is applied.
	TrackerConfigReloaded = capitan.NewSignal(
		"fixer.tracker.config.reloaded",
		"Config reloaded",
	)

	// TrackerConfigRejected is emitted when a followed config fails to
	// decode or validate.
	TrackerConfigRejected = capitan.NewSignal(
		"fixer.tracker.config.rejected",
		"Config rejected",
	)
)
