// Package permmat implements the one-hot permutation-matrix encoding that
// optimization backends consume and produce for TSP tours.
//
// A tour over n cities is encoded as a flattened n×n binary matrix: row p is
// the tour position, column j the city, and bit p*n+j set means "city j
// occupies position p". A feasible assignment has exactly one set bit per row
// and per column; raw backend samples carry no such guarantee.
//
// Provided operations:
//   - Encode: permutation → BitVec (strict; rejects non-permutations).
//   - Decode: BitVec → ordered city sequence. Rows are scanned in increasing
//     position order and EVERY set column is appended in increasing column
//     order — the documented pass-through policy. On a clean one-hot matrix
//     this reproduces "the matching column per row, in row order"; on a noisy
//     sample it degrades gracefully by surfacing all matches instead of
//     silently dropping ambiguous bits, so the output length may differ
//     from n.
//   - IsFeasible: the permutation-matrix gate. Never errors; any violation
//     (empty row, duplicate column, shape mismatch, non-binary value) is
//     simply false. Infeasible samples are expected data from heuristic
//     backends, not failures.
//   - RowCounts / ColCounts: diagnostics for reporting infeasible samples.
//
// All operations are pure, deterministic, and side-effect free.
package permmat
