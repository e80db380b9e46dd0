// SPDX-License-Identifier: MIT

// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for distance-matrix checks.
//   - Keep callers minimal by delegating nil/shape/symmetry checks here.
//   - Return plain sentinel errors (wrapped only with the validator tag) so
//     call sites can match them uniformly via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}
	return nil
}

// ValidateSquare – Ensures the matrix is square with positive order and
// returns that order.
//
// Implementation: assumes m is not nil (use ValidateNotNil first).
// Returns ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nr, nil
}

// ValidateDistances performs full distance-matrix validation:
//   - non-nil, square, n ≥ 1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative entries,
//   - no NaN/±Inf anywhere,
//   - symmetry: |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Error priority (enforced in tests): nil → shape → diagonal → NaN/Inf →
// negativity → asymmetry.
//
// Complexity: O(n²) time, O(1) space.
func ValidateDistances(m Matrix, tol float64) (int, error) {
	// Stage 1: nil and shape.
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	n, err := ValidateSquare(m)
	if err != nil {
		return 0, err
	}

	var (
		i, j     int     // loop indices
		aij, aji float64 // matrix entries a[i][j] and a[j][i]
		abs      float64 // scratch for |value|
	)

	// Stage 2: diagonal — a_ii ≈ 0 within tol, finite.
	for i = 0; i < n; i++ {
		aij, err = m.At(i, i)
		if err != nil {
			return 0, validatorErrorf("ValidateDistances", ErrDimensionMismatch)
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, validatorErrorf("ValidateDistances", ErrNaNInf)
		}
		abs = aij
		if abs < 0 {
			abs = -abs // |a_ii| without allocations
		}
		if abs > tol {
			return 0, validatorErrorf("ValidateDistances", ErrNonZeroDiagonal)
		}
	}

	// Stage 3: off-diagonal — finiteness and non-negativity.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal already checked
			}
			aij, err = m.At(i, j)
			if err != nil {
				return 0, validatorErrorf("ValidateDistances", ErrDimensionMismatch)
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, validatorErrorf("ValidateDistances", ErrNaNInf)
			}
			if aij < 0 {
				return 0, validatorErrorf("ValidateDistances", ErrNegativeValue)
			}
		}
	}

	// Stage 4: symmetry on the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return 0, validatorErrorf("ValidateDistances", ErrDimensionMismatch)
			}
			aji, err = m.At(j, i)
			if err != nil {
				return 0, validatorErrorf("ValidateDistances", ErrDimensionMismatch)
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs // |a_ij - a_ji|
			}
			if abs > tol {
				return 0, validatorErrorf("ValidateDistances", ErrAsymmetry)
			}
		}
	}

	return n, nil
}
