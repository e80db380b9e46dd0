// SPDX-License-Identifier: MIT

// Package instance models a Traveling Salesman Problem instance: a fixed city
// count n and an immutable, validated n×n distance matrix, optionally paired
// with planar coordinates for external rendering.
//
// Two construction paths exist:
//
//   - New: wrap an explicit distance matrix. The matrix must be square,
//     symmetric within tolerance, non-negative, finite, with a zero diagonal;
//     violations surface as sentinels wrapping ErrInvalidInstance.
//   - NewRandom: generate a reproducible random instance from a seed, either
//     with uniformly drawn symmetric weights in a bounded non-negative range,
//     or with random planar points and Euclidean pairwise distances
//     (WithEuclideanCoords), in which case coordinates are retained.
//
// Determinism:
//   - Same seed ⇒ identical instance across platforms. Seed 0 selects a fixed
//     default seed so zero-value configuration stays reproducible.
//
// Immutability:
//   - Instances never change after construction. Accessors hand out copies;
//     concurrent readers need no coordination.
package instance
