// SPDX-License-Identifier: MIT

// Package instance - constructors.
//
// This file implements the two construction paths (explicit matrix, random
// generation) with strict validation and no shared mutable state.
package instance

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/quantour/qtsp/matrix"
)

// New wraps an explicit distance matrix given as rows.
//
// Contract:
//   - rows must form a square n×n matrix with n ≥ 1,
//   - entries finite and non-negative, diagonal zero within tolerance,
//   - symmetric within tolerance (WithSymmetryTolerance to override).
//
// Errors: every violation wraps ErrInvalidInstance; the underlying matrix
// sentinel (ErrNonSquare, ErrAsymmetry, ErrNegativeValue, ErrNonZeroDiagonal,
// ErrNaNInf) stays matchable via errors.Is.
//
// Complexity: O(n²) time and space.
func New(rows [][]float64, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts)

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	n, err := matrix.ValidateDistances(d, o.symTol)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	return &Instance{n: n, dist: d}, nil
}

// NewRandom generates a reproducible random instance of n cities.
//
// Generators:
//   - default: symmetric weights drawn uniformly from [minW, maxW]
//     (WithWeightRange), diagonal zero;
//   - WithEuclideanCoords(side): uniform random points in [0, side]²,
//     distances = pairwise Euclidean norms, coordinates retained.
//
// Determinism: same n + options ⇒ identical instance (seed policy in options.go).
//
// Errors: ErrBadCityCount when n < 1.
//
// Complexity: O(n²) time and space.
func NewRandom(n int, opts ...Option) (*Instance, error) {
	if n < 1 {
		return nil, ErrBadCityCount
	}
	o := gatherOptions(opts)
	rng := rngFromSeed(o.seed)

	if o.euclidean {
		return randomEuclidean(n, o, rng)
	}
	return randomUniform(n, o, rng)
}

// randomUniform fills the upper triangle with uniform draws from [minW, maxW]
// and mirrors it, so symmetry holds by construction.
func randomUniform(n int, o options, rng *rand.Rand) (*Instance, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	var (
		i, j int
		w    float64
		span = o.maxW - o.minW
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = o.minW
			if span > 0 {
				w = o.minW + rng.Float64()*span
			}
			// Mirror both entries; Set rejects only NaN/Inf, impossible here.
			if err = d.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
			}
			if err = d.Set(j, i, w); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
			}
		}
	}

	return &Instance{n: n, dist: d}, nil
}

// randomEuclidean draws n points in [0, side]² and derives the full pairwise
// Euclidean distance matrix. Symmetric and metric by construction.
func randomEuclidean(n int, o options, rng *rand.Rand) (*Instance, error) {
	pts := make([]Point, n)

	var i, j int
	for i = 0; i < n; i++ {
		pts[i] = Point{X: rng.Float64() * o.side, Y: rng.Float64() * o.side}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if err = d.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
			}
			if err = d.Set(j, i, w); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
			}
		}
	}

	return &Instance{n: n, dist: d, coords: pts}, nil
}
