// Package permmat - encoding (permutation → bit vector).
package permmat

// ValidatePermutation checks that order is a permutation of {0..n-1} of
// length n. It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if n < 1 {
		return ErrBadSize
	}
	if len(order) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		// Out-of-range element violates the bijection contract.
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		// So does a duplicate.
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// Encode maps a visiting order (a permutation of [0,n), n = len(order)) to its
// one-hot permutation-matrix bit vector of length n²: bit p*n + order[p] is 1
// for every position p, all others 0.
//
// Contract:
//   - order must be a permutation of [0, n); otherwise ErrNotPermutation
//     (ErrBadSize for an empty order).
//   - Deterministic, total, side-effect free.
//
// Complexity: O(n²) time and space (the returned vector).
func Encode(order []int) (BitVec, error) {
	n := len(order)
	if err := ValidatePermutation(order, n); err != nil {
		return nil, err
	}

	bits := make(BitVec, n*n)

	var p int
	for p = 0; p < n; p++ {
		bits[p*n+order[p]] = 1
	}
	return bits, nil
}
