package scramble

import "errors"

// Validation errors returned by Target.Validate and Animator.Start.
var (
	// ErrEmptyAlphabet indicates a target with no characters to scramble with.
	ErrEmptyAlphabet = errors.New("scramble: empty alphabet")

	// ErrInvalidInterval indicates a non-positive tick interval.
	ErrInvalidInterval = errors.New("scramble: tick interval must be positive")

	// ErrInvalidDuration indicates a negative run duration.
	ErrInvalidDuration = errors.New("scramble: duration must not be negative")
)
