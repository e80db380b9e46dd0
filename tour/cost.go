// Package tour — cost evaluation.
//
// This file provides small, allocation-conscious helpers to compute the total
// cost of a cyclic visiting sequence against a distance matrix. They are
// intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels on any invalid input.
//   - Defensive checks (NaN/Inf/negative) even for matrices validated upstream.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tour

import (
	"math"

	"github.com/quantour/qtsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting comparisons.
const roundScale = 1e9

// Cost sums distances along the closed cycle over order: edge
// order[i]→order[(i+1) mod len] for every i, so the cycle wraps from the last
// city back to the first.
//
// Contract:
//   - dist must be non-nil and square; indices in order must lie in [0, n).
//   - order of ANY length is accepted; an empty order costs 0 and a
//     single-city order costs the (zero) self-distance. Degenerate sequences
//     from infeasible decodes are scored like any other — gate with
//     permmat.IsFeasible when a valid tour length is required.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrIndexOutOfRange,
// matrix.ErrNaNInf (non-finite entry), matrix.ErrNegativeValue.
//
// Complexity: O(len(order)) time, O(1) space.
func Cost(dist matrix.Matrix, order []int) (float64, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, err
	}
	n, err := matrix.ValidateSquare(dist)
	if err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		L   = len(order)
	)
	for i = 0; i < L; i++ {
		u = order[i]
		v = order[(i+1)%L]

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrIndexOutOfRange
		}

		// Fetch the edge weight and validate defensively.
		w, err = dist.At(u, v)
		if err != nil {
			// At only fails on OOB, which the range check above excludes.
			return 0, ErrIndexOutOfRange
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, matrix.ErrNaNInf
		}
		if w < 0 {
			return 0, matrix.ErrNegativeValue
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
