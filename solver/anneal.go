// Package solver - simulated annealing backend.
//
// A classical stand-in for a quantum annealer: single-bit-flip Metropolis
// sweeps over the QUBO energy under a geometric inverse-temperature schedule,
// with independent restarts run concurrently. The returned sample is the best
// state seen across all restarts — which may well be infeasible; interpreting
// it is the caller's job.
package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/quantour/qtsp/permmat"
	"github.com/quantour/qtsp/qubo"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSweeps is the number of full-lattice Metropolis sweeps per restart.
	DefaultSweeps = 1000

	// DefaultRestarts is the number of independent annealing runs.
	DefaultRestarts = 8

	// DefaultBetaMin / DefaultBetaMax bound the geometric schedule
	// (hot start, cold finish).
	DefaultBetaMin = 0.01
	DefaultBetaMax = 10.0
)

// Anneal is the simulated-annealing backend. Construct via NewAnneal;
// the zero value uses nonsensical knobs.
type Anneal struct {
	seed     int64
	sweeps   int
	restarts int
	betaMin  float64
	betaMax  float64
}

// Compile-time conformance with the backend boundary.
var _ Adapter = (*Anneal)(nil)

// AnnealOption mutates the backend configuration.
type AnnealOption func(*Anneal)

// WithSeed fixes the base RNG seed (0 ⇒ fixed default seed; see rng.go).
func WithSeed(seed int64) AnnealOption {
	return func(a *Anneal) { a.seed = seed }
}

// WithSweeps sets the sweeps per restart. Panics if sweeps < 1.
func WithSweeps(sweeps int) AnnealOption {
	if sweeps < 1 {
		panic(fmt.Sprintf("solver.WithSweeps: require sweeps >= 1, got %d", sweeps))
	}
	return func(a *Anneal) { a.sweeps = sweeps }
}

// WithRestarts sets the independent restart count. Panics if restarts < 1.
func WithRestarts(restarts int) AnnealOption {
	if restarts < 1 {
		panic(fmt.Sprintf("solver.WithRestarts: require restarts >= 1, got %d", restarts))
	}
	return func(a *Anneal) { a.restarts = restarts }
}

// WithBetaRange sets the inverse-temperature schedule endpoints.
// Panics unless 0 < min <= max.
func WithBetaRange(min, max float64) AnnealOption {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("solver.WithBetaRange: require 0 < min <= max, got min=%g, max=%g", min, max))
	}
	return func(a *Anneal) {
		a.betaMin = min
		a.betaMax = max
	}
}

// NewAnneal returns a simulated-annealing backend with the documented defaults.
func NewAnneal(opts ...AnnealOption) *Anneal {
	a := &Anneal{
		sweeps:   DefaultSweeps,
		restarts: DefaultRestarts,
		betaMin:  DefaultBetaMin,
		betaMax:  DefaultBetaMax,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// neighbor is one off-diagonal coupling seen from a variable.
type neighbor struct {
	idx int
	v   float64
}

// restartResult is the outcome of one independent annealing run.
type restartResult struct {
	bits   permmat.BitVec
	energy float64
}

// Solve anneals restarts independent runs concurrently and returns the
// lowest-energy state observed.
//
// Determinism: restart r uses the substream deriveSeed(seed, r), so the result
// does not depend on goroutine scheduling. Ties between restarts resolve to
// the lowest restart index.
//
// Errors: ErrNilModel, ErrModelMismatch (non-positive N), ctx.Err() on
// cancellation.
//
// Complexity: O(restarts · sweeps · (N + coupling degree)) time.
func (a *Anneal) Solve(ctx context.Context, m *qubo.Model) (permmat.BitVec, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if m.N < 1 {
		return nil, ErrModelMismatch
	}

	// Precompute the flip-delta structure once; shared read-only by restarts.
	var (
		c      = m.Canonicalize()
		linear = make([]float64, c.N)
		neigh  = make([][]neighbor, c.N)
		t      qubo.Term
	)
	for _, t = range c.Terms {
		if t.I == t.J {
			linear[t.I] += t.Value
			continue
		}
		neigh[t.I] = append(neigh[t.I], neighbor{idx: t.J, v: t.Value})
		neigh[t.J] = append(neigh[t.J], neighbor{idx: t.I, v: t.Value})
	}

	// Seed policy: 0 ⇒ fixed default (rng.go), then one derived substream per restart.
	base := a.seed
	if base == 0 {
		base = defaultRNGSeed
	}

	var (
		results = make([]restartResult, a.restarts)
		g, gctx = errgroup.WithContext(ctx)
	)
	for r := 0; r < a.restarts; r++ {
		r := r
		g.Go(func() error {
			res, err := a.annealOnce(gctx, c, linear, neigh, deriveSeed(base, uint64(r)))
			if err != nil {
				return err
			}
			results[r] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := lo.MinBy(results, func(x, y restartResult) bool { return x.energy < y.energy })
	return best.bits, nil
}

// annealOnce runs a single restart on its own RNG stream.
func (a *Anneal) annealOnce(ctx context.Context, m *qubo.Model, linear []float64, neigh [][]neighbor, seed int64) (restartResult, error) {
	rng := rngFromSeed(seed)

	// Hot random start: each bit set with probability 1/2.
	state := make(permmat.BitVec, m.N)

	var i int
	for i = 0; i < m.N; i++ {
		if rng.Intn(2) == 1 {
			state[i] = 1
		}
	}

	cur, err := m.Energy(state)
	if err != nil {
		return restartResult{}, err
	}
	var (
		best  = append(permmat.BitVec(nil), state...)
		bestE = cur
	)

	// Geometric schedule: beta(s) = betaMin·(betaMax/betaMin)^(s/(sweeps-1)).
	var (
		ratio = a.betaMax / a.betaMin
		beta  float64
		delta float64
		s     int
	)
	for s = 0; s < a.sweeps; s++ {
		// Poll cancellation between sweeps only; inside a sweep is hot path.
		if ctx.Err() != nil {
			return restartResult{}, ctx.Err()
		}
		if a.sweeps == 1 {
			beta = a.betaMax
		} else {
			beta = a.betaMin * math.Pow(ratio, float64(s)/float64(a.sweeps-1))
		}

		for i = 0; i < m.N; i++ {
			delta = flipDelta(state, linear, neigh, i)
			// Metropolis acceptance: downhill always, uphill with exp(-beta·Δ).
			if delta > 0 && rng.Float64() >= math.Exp(-beta*delta) {
				continue
			}
			state[i] ^= 1
			cur += delta
			if cur < bestE {
				bestE = cur
				copy(best, state)
			}
		}
	}

	return restartResult{bits: best, energy: bestE}, nil
}

// flipDelta returns the energy change of flipping variable i in state.
//
// With d = linear[i] + Σ_j v_ij·x_j over couplings of i, flipping 0→1 adds d
// and 1→0 subtracts it.
//
// Complexity: O(deg(i)).
func flipDelta(state permmat.BitVec, linear []float64, neigh [][]neighbor, i int) float64 {
	d := linear[i]

	var nb neighbor
	for _, nb = range neigh[i] {
		if state[nb.idx] != 0 {
			d += nb.v
		}
	}
	if state[i] != 0 {
		return -d
	}
	return d
}
