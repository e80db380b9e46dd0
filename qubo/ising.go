// SPDX-License-Identifier: MIT

// Package qubo - canonicalization and the QUBO↔Ising change of variables.
//
// Quantum-annealing APIs accept problems as a flat list of (I, J, Value)
// entries with I ≤ J and ingest either binary (QUBO) or ±1 spin (Ising)
// coefficients; the conversion below follows the standard x = (1+s)/2
// substitution and folds the resulting constant into Offset.
package qubo

import "sort"

// Canonicalize returns an equivalent model whose term list has I ≤ J for
// every entry, is sorted by (I, J), and has duplicate {I, J} pairs merged by
// summing their values. The receiver is not modified.
//
// Complexity: O(t·log t) for t terms.
func (m *Model) Canonicalize() *Model {
	// Normalize each entry to I ≤ J.
	terms := make([]Term, len(m.Terms))

	var i int
	var t Term
	for i, t = range m.Terms {
		if t.I > t.J {
			t.I, t.J = t.J, t.I
		}
		terms[i] = t
	}

	// Sort by I then J.
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].I != terms[b].I {
			return terms[a].I < terms[b].I
		}
		return terms[a].J < terms[b].J
	})

	// Merge duplicate {I, J} entries by summing their values.
	merged := make([]Term, 0, len(terms))
	for i, t = range terms {
		if i > 0 && t.I == merged[len(merged)-1].I && t.J == merged[len(merged)-1].J {
			merged[len(merged)-1].Value += t.Value
			continue
		}
		merged = append(merged, t)
	}

	return &Model{N: m.N, Terms: merged, Offset: m.Offset}
}

// ToIsing converts the binary model into spin form via x_i = (1+s_i)/2,
// s ∈ {-1,+1}. In the result, I == J entries are the local fields h_i and
// I < J entries the couplings J_ij; the change-of-variables constant is folded
// into Offset so that
//
//	E_ising(s) = Offset + Σ h_i·s_i + Σ J_ij·s_i·s_j
//
// equals the QUBO energy of the corresponding binary assignment. The receiver
// is canonicalized first and left unmodified.
//
// Complexity: O(t·log t) for t terms.
func (m *Model) ToIsing() *Model {
	c := m.Canonicalize()

	var (
		h      = make(map[int]float64, c.N)
		coup   = make(map[pairKey]float64, len(c.Terms))
		offset = c.Offset
		t      Term
	)
	for _, t = range c.Terms {
		if t.I == t.J {
			// Q·x = Q/2 + (Q/2)·s
			h[t.I] += t.Value / 2
			offset += t.Value / 2
			continue
		}
		// Q·x_i·x_j = Q/4·(1 + s_i + s_j + s_i·s_j)
		h[t.I] += t.Value / 4
		h[t.J] += t.Value / 4
		coup[pairKey{i: t.I, j: t.J}] += t.Value / 4
		offset += t.Value / 4
	}

	terms := make([]Term, 0, len(h)+len(coup))
	for i, v := range h {
		if v != 0 {
			terms = append(terms, Term{I: i, J: i, Value: v})
		}
	}
	for key, v := range coup {
		if v != 0 {
			terms = append(terms, Term{I: key.i, J: key.j, Value: v})
		}
	}
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].I != terms[b].I {
			return terms[a].I < terms[b].I
		}
		return terms[a].J < terms[b].J
	})

	return &Model{N: c.N, Terms: terms, Offset: offset}
}
