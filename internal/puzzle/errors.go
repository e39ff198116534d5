package puzzle

import "errors"

// Error kinds returned by the engine. Callers match them with errors.Is;
// the engine always wraps them with the offending values.
var (
	// ErrConfiguration reports non-positive rows, cols or image dimensions.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrBounds reports a flip index outside the pairs sequence.
	ErrBounds = errors.New("index out of bounds")

	// ErrState reports pairs whose length does not match rows×cols.
	ErrState = errors.New("inconsistent state")
)
