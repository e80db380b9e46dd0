// SPDX-License-Identifier: MIT

// Package qubo - objective evaluation of raw samples.
package qubo

import (
	"math"

	"github.com/quantour/qtsp/permmat"
)

// roundScale controls final energy stabilization precision (1e-9), matching
// the tour cost evaluator so the feasible-sample invariant compares exactly.
const roundScale = 1e9

// Energy evaluates the quadratic form on a raw sample. Any non-zero sample
// value counts as 1 (mirrors the permmat decode policy).
//
// Contract:
//   - len(bits) must equal m.N; otherwise ErrDimensionMismatch.
//   - Infeasible samples are legal input: penalties simply contribute.
//
// Complexity: O(len(m.Terms)) time, O(1) space.
func (m *Model) Energy(bits permmat.BitVec) (float64, error) {
	if len(bits) != m.N {
		return 0, ErrDimensionMismatch
	}

	var (
		sum = m.Offset
		t   Term
	)
	for _, t = range m.Terms {
		if bits[t.I] == 0 {
			continue
		}
		if t.I == t.J {
			sum += t.Value
			continue
		}
		if bits[t.J] != 0 {
			sum += t.Value
		}
	}
	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Keeps energies stable across platforms without affecting minimization.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
