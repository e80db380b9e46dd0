// Package qtsp maps the Travelling Salesman Problem onto binary quadratic
// models and back — instance validation, QUBO construction, Ising conversion,
// and faithful interpretation of whatever a sampler returns.
//
// 🚀 What is qtsp?
//
//	A deterministic, solver-agnostic pipeline that brings together:
//		• Instances: validated distance matrices + reproducible generators
//		• Encoding: permutation ↔ n² one-hot bit vectors (pass-through decode)
//		• Models: penalty-weighted QUBO construction, QUBO → Ising conversion
//		• Backends: exact Held–Karp and multi-restart simulated annealing
//		• Interpretation: feasibility gating and cyclic cost evaluation
//
// ✨ Why choose qtsp?
//
//   - Honest results – infeasible samples are data, never silent repairs
//   - Rock-solid guarantees – strict sentinels, errors.Is matching everywhere
//   - Reproducible – seeded RNG streams, 1e-9 cost stabilization
//   - Extensible – plug any sampler behind the solver.Adapter interface
//
// Under the hood, everything is organized in small focused subpackages:
//
//	matrix/   — dense row-major storage + distance-matrix validation
//	instance/ — immutable TSP instances & random generators
//	permmat/  — permutation-matrix codec & feasibility checking
//	qubo/     — QUBO model build, energy evaluation, Ising conversion
//	solver/   — backend adapters: exact DP, simulated annealing, config dispatch
//	tour/     — cost evaluation & the end-to-end solve pipeline
//
// Quick sketch of the flow:
//
//	instance ──► qubo.Build ──► solver.Adapter ──► permmat.Decode ──► tour.Result
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/quantour/qtsp
package qtsp
