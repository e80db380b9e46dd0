// SPDX-License-Identifier: MIT

// Package instance: functional configuration for instance construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - the deterministic RNG seed policy shared by the random generators.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package instance

import (
	"fmt"
	"math/rand"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMinWeight / DefaultMaxWeight bound the uniform weight generator.
	DefaultMinWeight = 1.0
	DefaultMaxWeight = 100.0

	// DefaultSymTol is the tolerance used for symmetry/diagonal checks when
	// validating explicit matrices.
	DefaultSymTol = 1e-9

	// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	defaultRNGSeed int64 = 1
)

// options carries resolved construction knobs; fields stay unexported and
// public APIs consume ...Option.
type options struct {
	seed      int64   // RNG seed (0 ⇒ defaultRNGSeed)
	minW      float64 // lower weight bound (uniform generator)
	maxW      float64 // upper weight bound (uniform generator)
	euclidean bool    // true ⇒ random planar points + Euclidean distances
	side      float64 // side of the square the points are drawn from
	symTol    float64 // symmetry/diagonal tolerance for explicit matrices
}

// Option mutates the internal options state.
type Option func(*options)

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		seed:   0,
		minW:   DefaultMinWeight,
		maxW:   DefaultMaxWeight,
		side:   DefaultMaxWeight,
		symTol: DefaultSymTol,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed fixes the RNG seed for random generation.
// Policy: seed==0 ⇒ fixed default seed; otherwise the seed is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWeightRange bounds the uniform weight generator to [min, max].
// Panics if min < 0 or max < min (programmer error in configuration).
func WithWeightRange(min, max float64) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("instance.WithWeightRange: require 0 <= min <= max, got min=%g, max=%g", min, max))
	}
	return func(o *options) {
		o.minW = min
		o.maxW = max
	}
}

// WithEuclideanCoords switches NewRandom to the geometric generator: cities
// become uniform random points in the [0, side]² square and distances their
// Euclidean norms. Coordinates are retained on the instance.
// Panics if side <= 0.
func WithEuclideanCoords(side float64) Option {
	if side <= 0 {
		panic(fmt.Sprintf("instance.WithEuclideanCoords: require side > 0, got %g", side))
	}
	return func(o *options) {
		o.euclidean = true
		o.side = side
	}
}

// WithSymmetryTolerance overrides the tolerance used when validating explicit
// matrices. Panics if tol < 0.
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 {
		panic(fmt.Sprintf("instance.WithSymmetryTolerance: require tol >= 0, got %g", tol))
	}
	return func(o *options) { o.symTol = tol }
}

// rngFromSeed returns a deterministic *rand.Rand under the seed policy.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
