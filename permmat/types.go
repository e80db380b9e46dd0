// Package permmat: types and sentinel errors.
package permmat

import "errors"

// BitVec is a flattened n×n row-major binary assignment: row = tour position,
// column = city. It is the raw output format of an optimization backend and
// is NOT guaranteed to encode a valid permutation matrix.
type BitVec []uint8

// Sentinel errors. Only input-contract violations produce errors; infeasible
// content never does (see IsFeasible).
var (
	// ErrNotPermutation is returned by Encode when the order is not a
	// permutation of [0, n). Programmer error, surfaced immediately.
	ErrNotPermutation = errors.New("permmat: order is not a permutation of [0,n)")

	// ErrBadSize is returned when n < 1.
	ErrBadSize = errors.New("permmat: size must be >= 1")

	// ErrDimensionMismatch is returned when a bit vector length is not n².
	ErrDimensionMismatch = errors.New("permmat: bit vector length does not match n*n")
)
