// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix kernel shared by the qtsp packages:
// a small Matrix interface, a row-major Dense implementation, a unified
// sentinel error set, and the distance-matrix validators used at instance
// construction time.
//
// Design:
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Deterministic behavior: fixed loop orders, no map iteration, no randomness.
//   - Strict sentinels: all failures are package-level errors matched via errors.Is.
//   - Distance policy: ValidateDistances enforces the shape every TSP instance
//     must satisfy (square, finite, zero diagonal, non-negative, symmetric).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - ValidateDistances: O(n²), allocation-free.
package matrix
