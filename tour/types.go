// Package tour: result type and sentinel errors.
package tour

import (
	"errors"

	"github.com/quantour/qtsp/permmat"
)

// Sentinel errors; matched via errors.Is.
var (
	// ErrIndexOutOfRange is returned by Cost when a city index in the order
	// falls outside [0, n). Fatal programmer/contract error.
	ErrIndexOutOfRange = errors.New("tour: city index out of range")

	// ErrNilInstance is returned by Interpret/Solve for a nil instance.
	ErrNilInstance = errors.New("tour: nil instance")

	// ErrNilAdapter is returned by Solve for a nil backend adapter.
	ErrNilAdapter = errors.New("tour: nil adapter")
)

// Result is the interpreted outcome of one backend invocation.
//
// Feasible distinguishes a valid tour from a degenerate decode: when false,
// Order is whatever sequence the pass-through decode produced (possibly of
// length ≠ n) and Cost is the cyclic cost over that sequence — reported, but
// not a tour length. Callers retry the backend, accept the degenerate tour,
// or surface the failure; the pipeline never hides it.
type Result struct {
	// Order is the decoded visiting sequence.
	Order []int

	// Cost is the cyclic cost over Order (0 for an empty decode).
	Cost float64

	// Feasible reports whether Raw encodes a valid permutation matrix.
	Feasible bool

	// Raw is the untouched backend sample, kept for diagnostics.
	Raw permmat.BitVec
}
