// Package solver: the backend boundary and sentinel errors.
package solver

import (
	"context"
	"errors"

	"github.com/quantour/qtsp/permmat"
	"github.com/quantour/qtsp/qubo"
)

// Adapter is the opaque boundary to an optimization backend. Implementations
// take the cost model and return one raw sampled assignment.
//
// Contract:
//   - The returned BitVec has length m.N (one value per binary variable).
//   - The sample is NOT guaranteed feasible; callers gate it through
//     permmat.IsFeasible before trusting a decoded tour.
//   - Implementations honor ctx for cancellation/deadline on long runs.
type Adapter interface {
	Solve(ctx context.Context, m *qubo.Model) (permmat.BitVec, error)
}

// Sentinel errors; matched via errors.Is.
var (
	// ErrNilModel is returned when Solve receives a nil model.
	ErrNilModel = errors.New("solver: nil model")

	// ErrModelMismatch is returned when the model's variable count does not
	// match the backend's instance (Exact) or is not a positive count.
	ErrModelMismatch = errors.New("solver: model does not match instance")

	// ErrTooLarge is returned by Exact when the instance exceeds the size the
	// O(n²·2ⁿ) dynamic program can handle.
	ErrTooLarge = errors.New("solver: instance too large for exact backend")

	// ErrUnknownBackend is returned by FromConfig for an unrecognized backend name.
	ErrUnknownBackend = errors.New("solver: unknown backend")

	// ErrBadConfig is returned by FromConfig when the configuration map cannot
	// be decoded or carries invalid parameter values.
	ErrBadConfig = errors.New("solver: invalid configuration")
)
