package sim

import "errors"

var (
	// ErrNoMatch indicates a runner built without a match.
	ErrNoMatch = errors.New("sim: runner has no match")

	// ErrInvalidConfig indicates a run configuration that cannot be played.
	ErrInvalidConfig = errors.New("sim: invalid run config")
)
