// SPDX-License-Identifier: MIT

// Package instance: domain types and sentinel errors.
package instance

import (
	"errors"
	"fmt"

	"github.com/quantour/qtsp/matrix"
)

// ErrInvalidInstance is the base sentinel for every construction failure:
// bad city count, malformed or inconsistent distance matrix. Specific causes
// below wrap it, so errors.Is(err, ErrInvalidInstance) matches them all while
// errors.Is against the specific sentinel still discriminates the cause.
var ErrInvalidInstance = errors.New("instance: invalid instance")

// ErrBadCityCount is returned when the requested city count is < 1.
var ErrBadCityCount = fmt.Errorf("%w: city count must be >= 1", ErrInvalidInstance)

// Point is a planar coordinate attached to a city by the Euclidean generator.
type Point struct {
	X, Y float64
}

// Instance is an immutable TSP instance. The zero value is not usable;
// construct via New or NewRandom.
type Instance struct {
	n      int           // city count, fixed at construction
	dist   *matrix.Dense // validated n×n distance matrix; never mutated
	coords []Point       // optional planar coordinates (Euclidean generator only)
}

// N returns the number of cities.
// Complexity: O(1).
func (in *Instance) N() int { return in.n }

// Distance returns the distance between cities i and j.
// Returns matrix.ErrOutOfRange when an index is outside [0, n).
// Complexity: O(1).
func (in *Instance) Distance(i, j int) (float64, error) {
	return in.dist.At(i, j)
}

// Matrix returns an independent deep copy of the distance matrix.
// The copy may be mutated freely without affecting the instance.
// Complexity: O(n²).
func (in *Instance) Matrix() matrix.Matrix {
	return in.dist.Clone()
}

// Coord returns the planar coordinate of city i and whether coordinates exist
// for this instance (only the Euclidean generator attaches them).
// Complexity: O(1).
func (in *Instance) Coord(i int) (Point, bool) {
	if in.coords == nil || i < 0 || i >= len(in.coords) {
		return Point{}, false
	}
	return in.coords[i], true
}

// Coords returns a copy of all city coordinates, or nil when the instance
// carries none. Intended for external renderers.
// Complexity: O(n).
func (in *Instance) Coords() []Point {
	if in.coords == nil {
		return nil
	}
	out := make([]Point, len(in.coords))
	copy(out, in.coords)
	return out
}
