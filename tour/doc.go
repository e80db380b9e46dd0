// Package tour evaluates candidate tours and glues the pipeline together:
// instance → QUBO model → backend sample → decoded order → feasibility →
// cyclic cost.
//
// Cost sums distances along the closed cycle order[0]→order[1]→…→order[0].
// It deliberately accepts sequences of ANY length, not just permutations:
// infeasible backend samples decode into degenerate sequences, and those are
// still scored so callers can inspect them — the Feasible flag on Result, not
// an error, distinguishes a trustworthy tour length from a degenerate cycle
// cost.
//
// Interpret and Solve implement the explicit data-passing contract between a
// backend and the decoder: the raw sample flows directly into decoding,
// feasibility checking and costing, with no manual step in between.
package tour
