// Package permmat - feasibility gate for raw backend samples.
package permmat

import "github.com/bits-and-blooms/bitset"

// IsFeasible reports whether bits encodes a valid permutation matrix: every
// position row has exactly one set bit AND every city column has exactly one
// set bit.
//
// Policy: returns false — never an error — for ANY violation: wrong n, wrong
// vector length, non-binary values, empty or ambiguous rows, reused or unused
// cities. Infeasible samples are a first-class expected outcome of heuristic
// backends and gate whether a decoded cost may be trusted as a tour length.
//
// Complexity: O(n²) time, O(n/64) space (column occupancy bitset).
func IsFeasible(bits BitVec, n int) bool {
	if n < 1 || len(bits) != n*n {
		return false
	}

	// used tracks which city columns have been claimed by earlier rows;
	// a second claim is a column violation regardless of later content.
	used := bitset.New(uint(n))

	var (
		p, j int
		row  int // set bits observed in the current row
	)
	for p = 0; p < n; p++ {
		row = 0
		for j = 0; j < n; j++ {
			switch bits[p*n+j] {
			case 0:
				continue
			case 1:
				if used.Test(uint(j)) {
					return false // city claimed by more than one position
				}
				used.Set(uint(j))
				row++
			default:
				return false // non-binary value
			}
		}
		if row != 1 {
			return false // empty or ambiguous position row
		}
	}

	// n rows each claimed one distinct city ⇒ all n cities are covered.
	return used.Count() == uint(n)
}
