// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"math"
)

// error context tags used by denseErrorf.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,7): matrix: index out of range". The sentinel is preserved
// via %w so callers keep errors.Is matching.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Contract:
//   - rows > 0 and cols > 0; otherwise ErrInvalidDimensions.
//   - Fixed zero initialization; no randomness.
//
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape; empty dimensions are forbidden at the public surface.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the contiguous buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a [][]float64 literal, copying values.
//
// Contract:
//   - rows must be non-empty and rectangular (every row of equal, positive length);
//     otherwise ErrInvalidDimensions / ErrDimensionMismatch.
//   - The input slices are not retained; mutations after the call do not leak in.
//
// Complexity: O(r*c) time and space.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	// Rectangularity check before any allocation.
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
	}

	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i])
	}
	return d, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so At/Set share identical bound semantics.
//
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}
	return m.data[off], nil
}

// Set stores v at (row, col). NaN is rejected to keep downstream validators
// and cost accumulation well-defined; ±Inf is likewise rejected because the
// distance policy has no "missing edge" notion in this module.
//
// Errors: ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep copy of the matrix as a Matrix.
// The copy shares no storage with the receiver.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	return cp
}
