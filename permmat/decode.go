// Package permmat - decoding (bit vector → ordered city sequence).
package permmat

// Decode interprets bits as an n×n row-major matrix (row = position, column =
// city) and returns the city sequence produced by scanning positions 0..n-1 in
// order and appending EVERY city whose bit is set, in increasing city order.
//
// Pass-through policy: a clean one-hot matrix yields exactly the encoded
// permutation; a noisy sample yields all matches per row, so the output length
// may be ≠ n. That is intentional — backends are heuristic, and ambiguity must
// be surfaced (via IsFeasible and the sequence length), never hidden. Any
// non-zero value counts as a set bit.
//
// Errors: only shape-contract violations fail — ErrBadSize when n < 1,
// ErrDimensionMismatch when len(bits) != n². Infeasible content never errors.
//
// Complexity: O(n²) time, O(n) typical output space.
func Decode(bits BitVec, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if len(bits) != n*n {
		return nil, ErrDimensionMismatch
	}

	// A feasible sample yields exactly n cities; reserve for that common case.
	order := make([]int, 0, n)

	var p, j int
	for p = 0; p < n; p++ {
		for j = 0; j < n; j++ {
			if bits[p*n+j] != 0 {
				order = append(order, j)
			}
		}
	}
	return order, nil
}

// RowCounts returns, per position row, how many bits are set. Useful when
// reporting why a sample is infeasible (empty vs. ambiguous rows).
//
// Errors: same shape contract as Decode.
//
// Complexity: O(n²) time, O(n) space.
func RowCounts(bits BitVec, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if len(bits) != n*n {
		return nil, ErrDimensionMismatch
	}

	counts := make([]int, n)

	var p, j int
	for p = 0; p < n; p++ {
		for j = 0; j < n; j++ {
			if bits[p*n+j] != 0 {
				counts[p]++
			}
		}
	}
	return counts, nil
}

// ColCounts returns, per city column, how many bits are set (how many
// positions claim that city).
//
// Errors: same shape contract as Decode.
//
// Complexity: O(n²) time, O(n) space.
func ColCounts(bits BitVec, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	if len(bits) != n*n {
		return nil, ErrDimensionMismatch
	}

	counts := make([]int, n)

	var p, j int
	for p = 0; p < n; p++ {
		for j = 0; j < n; j++ {
			if bits[p*n+j] != 0 {
				counts[j]++
			}
		}
	}
	return counts, nil
}
