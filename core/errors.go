package core

import "errors"

// Sentinel errors for malformed input. The generator treats these as
// programmer error and surfaces them immediately. ErrEmptyParameters is
// returned by Prepare (and so by ipog.Generate), ErrInvalidStrength by
// ValidateStrength, and ErrInvalidIndex by ValidateIndex.
var (
	// ErrEmptyParameters is returned when the parameter map has no entries,
	// or when a named parameter's domain is empty after deduplication.
	ErrEmptyParameters = errors.New("core: parameters must not be empty")

	// ErrInvalidStrength is returned when strength cannot be clamped into a
	// usable range. Most out-of-range strengths clamp into [1, N] instead
	// of erroring; this sentinel is reserved for strengths that cannot be
	// made sense of at all, e.g. on an empty parameter set where N is 0.
	ErrInvalidStrength = errors.New("core: invalid strength")

	// ErrInvalidIndex is returned by index-arithmetic callers that choose to
	// validate preconditions before computing a rank or bit index.
	ErrInvalidIndex = errors.New("core: index out of range")
)
