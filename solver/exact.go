// Package solver - exact backend (Held–Karp dynamic programming).
package solver

import (
	"context"
	"math"

	"github.com/quantour/qtsp/instance"
	"github.com/quantour/qtsp/permmat"
	"github.com/quantour/qtsp/qubo"
)

// ExactMaxCities bounds the Held–Karp table: beyond this the O(n·2ⁿ) memory
// is not worth an "exact" label in a reference backend.
const ExactMaxCities = 16

// ctxCheckMaskStride controls how often the DP loop polls ctx; a power of two
// so the check compiles to a mask test.
const ctxCheckMaskStride = 1 << 10

// Exact is the exhaustive reference backend: it solves the instance optimally
// with the Held–Karp dynamic program and returns the optimal tour re-encoded
// as a one-hot sample. Always feasible, always optimal.
//
// The instance is captured at construction because the QUBO form, while
// sufficient for samplers, is the wrong representation for a tour DP; the
// model passed to Solve is used for shape verification only.
type Exact struct {
	inst *instance.Instance
}

// Compile-time conformance with the backend boundary.
var _ Adapter = (*Exact)(nil)

// NewExact returns an exact backend bound to inst.
func NewExact(inst *instance.Instance) *Exact {
	return &Exact{inst: inst}
}

// Solve runs Held–Karp over the instance distance matrix.
//
// Contract:
//   - m must be non-nil and have m.N == n² for the bound instance;
//     otherwise ErrNilModel / ErrModelMismatch.
//   - n must not exceed ExactMaxCities; otherwise ErrTooLarge.
//   - Honors ctx: returns ctx.Err() when cancelled mid-run.
//
// The DP indexes subsets by bitmask; dp[mask][j] is the minimum cost to start
// at city 0, visit exactly the cities in mask, and end at j. The tour closes
// back to 0 and the resulting permutation is one-hot encoded.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space.
func (e *Exact) Solve(ctx context.Context, m *qubo.Model) (permmat.BitVec, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	n := e.inst.N()
	if m.N != n*n {
		return nil, ErrModelMismatch
	}
	if n > ExactMaxCities {
		return nil, ErrTooLarge
	}
	if n == 1 {
		return permmat.Encode([]int{0})
	}

	// Materialize distances once; the DP reads each entry many times.
	dist := make([][]float64, n)

	var i, j int
	var err error
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if dist[i][j], err = e.inst.Distance(i, j); err != nil {
				return nil, err
			}
		}
	}

	// DP and parent tables over all subsets containing city 0.
	var (
		allMask   = (1 << n) - 1
		startMask = 1 << 0
		dp        = make([][]float64, 1<<n)
		parent    = make([][]int, 1<<n)
		mask      int
	)
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1) // unreachable until proven otherwise
			parent[mask][j] = -1
		}
	}
	dp[startMask][0] = 0

	var (
		k        int
		prevMask int
		cand     float64
	)
	for mask = 0; mask <= allMask; mask++ {
		// Poll cancellation on a stride; per-mask polling would dominate small n.
		if mask&(ctxCheckMaskStride-1) == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Skip subsets that do not include the start city.
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue // j not in subset
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue // k not in the predecessor subset
				}
				if math.IsInf(dp[prevMask][k], 1) {
					continue
				}
				cand = dp[prevMask][k] + dist[k][j]
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the tour by returning to city 0.
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		if math.IsInf(dp[allMask][j], 1) {
			continue
		}
		total = dp[allMask][j] + dist[j][0]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		// Cannot happen on a validated (complete, finite) instance; guard anyway.
		return nil, ErrModelMismatch
	}

	// Reconstruct the visiting order from the parent table.
	var (
		order = make([]int, n)
		cur   = last
	)
	mask = allMask
	for i = n - 1; i >= 1; i-- {
		order[i] = cur
		prevMask = mask ^ (1 << cur)
		cur = parent[mask][cur]
		mask = prevMask
	}
	order[0] = 0

	return permmat.Encode(order)
}
