package builder

import "errors"

// Sentinel errors for the builder package. Callers branch on these with
// errors.Is; they are never reformatted at the definition site.
var (
	// ErrTooFewVertices indicates a numeric parameter (n) is smaller than the
	// minimum the requested constructor requires.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrConstructFailed indicates BuildGraph was asked to run a nil
	// constructor, or a constructor could not complete.
	ErrConstructFailed = errors.New("builder: construction failed")
)
