// SPDX-License-Identifier: MIT

// Package qubo - model construction from a TSP instance.
package qubo

import (
	"sort"

	"github.com/quantour/qtsp/instance"
)

// pairKey addresses one canonical (I ≤ J) coefficient during accumulation.
type pairKey struct {
	i, j int
}

// Build derives the TSP QUBO for inst.
//
// Contract:
//   - inst must be non-nil; otherwise ErrNilInstance.
//   - The returned model is canonical: I ≤ J, terms sorted by (I, J),
//     duplicates merged, zero coefficients dropped.
//
// Construction:
//   - Penalty expansion of A·(1-Σx)² per row and per column contributes
//     Offset += 2nA, a linear -2A on every variable, and +2A on every
//     same-row and same-column pair.
//   - The distance objective couples consecutive positions cyclically.
//
// Complexity: O(n³) time (distance coupling), O(n³) terms space.
func Build(inst *instance.Instance, opts ...Option) (*Model, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := inst.N()

	// Default penalty: larger than any achievable edge gain.
	penalty := o.penalty
	if penalty == 0 {
		maxD := 0.0

		var i, j int
		var d float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				// Indices are in range by construction; surface any defect.
				if d, err = inst.Distance(i, j); err != nil {
					return nil, err
				}
				if d > maxD {
					maxD = d
				}
			}
		}
		penalty = (1 + maxD) * float64(n)
	}

	var (
		acc    = make(map[pairKey]float64, n*n*n)
		offset float64
		idx    = func(p, j int) int { return p*n + j } // permmat variable layout
	)
	// addTerm accumulates v onto the canonical (min,max) coefficient.
	addTerm := func(a, b int, v float64) {
		if a > b {
			a, b = b, a
		}
		acc[pairKey{i: a, j: b}] += v
	}

	var p, q, j, k int

	// Position constraints: each position holds exactly one city.
	for p = 0; p < n; p++ {
		offset += penalty
		for j = 0; j < n; j++ {
			addTerm(idx(p, j), idx(p, j), -penalty)
			for k = j + 1; k < n; k++ {
				addTerm(idx(p, j), idx(p, k), 2*penalty)
			}
		}
	}

	// City constraints: each city occupies exactly one position.
	for j = 0; j < n; j++ {
		offset += penalty
		for p = 0; p < n; p++ {
			addTerm(idx(p, j), idx(p, j), -penalty)
			for q = p + 1; q < n; q++ {
				addTerm(idx(p, j), idx(q, j), 2*penalty)
			}
		}
	}

	// Distance objective over consecutive positions; the cycle wraps from the
	// last position back to the first. Trivial for n == 1 (no edges).
	if n > 1 {
		var d float64
		var err error
		for p = 0; p < n; p++ {
			q = (p + 1) % n
			for j = 0; j < n; j++ {
				for k = 0; k < n; k++ {
					if j == k {
						continue // zero self-distance; the pair is also forbidden by penalties
					}
					if d, err = inst.Distance(j, k); err != nil {
						return nil, err
					}
					if d != 0 {
						addTerm(idx(p, j), idx(q, k), d)
					}
				}
			}
		}
	}

	return &Model{N: n * n, Terms: sortedTerms(acc), Offset: offset}, nil
}

// sortedTerms materializes the accumulator into the canonical term order,
// dropping exact-zero coefficients.
func sortedTerms(acc map[pairKey]float64) []Term {
	terms := make([]Term, 0, len(acc))
	for key, v := range acc {
		if v == 0 {
			continue
		}
		terms = append(terms, Term{I: key.i, J: key.j, Value: v})
	}
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].I != terms[b].I {
			return terms[a].I < terms[b].I
		}
		return terms[a].J < terms[b].J
	})
	return terms
}
