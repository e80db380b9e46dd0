// SPDX-License-Identifier: MIT

// Package qubo builds the Quadratic Unconstrained Binary Optimization model
// that optimization backends consume for a TSP instance.
//
// The model ranges over N = n² binary variables indexed p*n + j (position p,
// city j — the permmat layout). It is the sum of:
//
//   - the distance objective Σ_p Σ_{j≠k} D[j][k]·x[p,j]·x[p+1 mod n,k],
//     whose value on a feasible assignment is exactly the cyclic tour cost;
//   - penalty terms A·(1-Σ_j x[p,j])² per position and A·(1-Σ_p x[p,j])² per
//     city, which vanish on feasible assignments and dominate the objective
//     otherwise (A defaults to (1+maxD)·n).
//
// The term list follows the upper-triangular convention of quantum-annealer
// APIs: I ≤ J after Canonicalize, duplicates merged, plus a constant Offset.
// ToIsing converts to the ±1 spin form those backends ingest natively.
//
// Invariant (tested): for any feasible BitVec encoding order π,
// Energy(bits) equals the cyclic tour cost of π.
package qubo
