package fixer

import "errors"

var (
	// ErrConfiguration is returned by New and Reconfigure when the tracker
	// cannot be set up: the element is missing, the container resolves to
	// nothing, or a config value fails validation.
	ErrConfiguration = errors.New("fixer: configuration error")

	// ErrGeometryUnavailable is returned by Node.Measure implementations when
	// layout information cannot be read, for example because the node is
	// detached from the document. The tracker skips the evaluation cycle and
	// retries on the next notification.
	ErrGeometryUnavailable = errors.New("fixer: geometry unavailable")

	// ErrDestroyed is returned by operations invoked on a destroyed tracker.
	ErrDestroyed = errors.New("fixer: tracker destroyed")
)
