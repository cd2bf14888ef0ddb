package fixer

import "github.com/zoobzio/capitan"

// Field keys for tracker events.
var (
	// KeyTracker is the tracker's unique ID.
	KeyTracker = capitan.NewStringKey("tracker")

	// KeyState is the current state of the tracker.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyScrollTop is the evaluated scroll offset.
	KeyScrollTop = capitan.NewIntKey("scroll_top")

	// KeyStart is the activation start threshold.
	KeyStart = capitan.NewIntKey("start")

	// KeyEnd is the activation end threshold.
	KeyEnd = capitan.NewIntKey("end")

	// KeyNotification is the kind of notification that triggered the event.
	KeyNotification = capitan.NewStringKey("notification")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured resize debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")
)
