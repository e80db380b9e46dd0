// Package solver defines the boundary to optimization backends and ships two
// reference backends so the full pipeline runs without external services.
//
// The boundary is the Adapter interface: given a QUBO model, a backend returns
// a raw permmat.BitVec sample. Feasibility is deliberately NOT part of the
// contract — heuristic backends return whatever assignment they found, and the
// caller interprets it through permmat/tour. A real quantum service (gate-model
// eigensolver, annealer) plugs in behind the same interface.
//
// Reference backends:
//
//   - Exact: Held–Karp dynamic programming over the instance distance matrix,
//     O(n²·2ⁿ); always returns the optimal feasible sample. Practical for
//     n ≲ 16.
//   - Anneal: classical simulated annealing over the QUBO energy with
//     single-bit flips and a geometric temperature schedule; multi-restart,
//     each restart on an independent deterministic RNG stream, restarts run
//     concurrently. May return infeasible samples — that is expected data.
//
// FromConfig builds an Adapter from a plain configuration map
// ({"backend": "anneal", "seed": 7, ...}), for callers that wire backends
// from external configuration.
//
// Determinism: both backends are fully deterministic for a fixed seed; no
// time-based randomness anywhere. Long runs honor context cancellation.
package solver
