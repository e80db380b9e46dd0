// SPDX-License-Identifier: MIT

// Package qubo: model types, options and sentinel errors.
package qubo

import (
	"errors"
	"fmt"
)

// Sentinel errors; matched via errors.Is.
var (
	// ErrNilInstance is returned when Build receives a nil instance.
	ErrNilInstance = errors.New("qubo: nil instance")

	// ErrDimensionMismatch is returned when a sample length does not match
	// the variable count of the model.
	ErrDimensionMismatch = errors.New("qubo: sample length does not match variable count")
)

// Term is one coefficient of the quadratic form. I == J encodes a linear
// term on variable I; I != J encodes the product x_I·x_J. Canonical form
// keeps I ≤ J.
type Term struct {
	I, J  int
	Value float64
}

// Model is a QUBO over N binary variables:
//
//	E(x) = Offset + Σ_{I==J} Value·x_I + Σ_{I<J} Value·x_I·x_J
//
// For TSP models N = n² with the permmat variable layout. Models are
// immutable by convention: Canonicalize and ToIsing return fresh values.
type Model struct {
	// N is the number of binary variables.
	N int

	// Terms holds the quadratic form coefficients.
	Terms []Term

	// Offset is the constant energy shift (from penalty expansion and, after
	// ToIsing, from the binary→spin change of variables).
	Offset float64
}

// options carries resolved build knobs.
type options struct {
	penalty float64 // constraint weight A; 0 ⇒ derive the documented default
}

// Option mutates the internal options state.
type Option func(*options)

// WithPenalty overrides the constraint weight A. The default,
// (1 + max distance)·n, already dominates any single-edge gain; override only
// when a backend needs a different penalty-to-objective ratio.
// Panics if a <= 0 (programmer error in configuration).
func WithPenalty(a float64) Option {
	if a <= 0 {
		panic(fmt.Sprintf("qubo.WithPenalty: require a > 0, got %g", a))
	}
	return func(o *options) { o.penalty = a }
}
