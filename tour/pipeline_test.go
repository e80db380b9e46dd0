package tour_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantour/qtsp/instance"
	"github.com/quantour/qtsp/permmat"
	"github.com/quantour/qtsp/qubo"
	"github.com/quantour/qtsp/solver"
	"github.com/quantour/qtsp/tour"
)

// dist4 has a unique optimal cyclic cost of 10 (tour 0→1→2→3→0 or reversed).
var dist4 = [][]float64{
	{0, 1, 6, 4},
	{1, 0, 2, 7},
	{6, 2, 0, 3},
	{4, 7, 3, 0},
}

// fixedAdapter returns a canned sample; the degenerate-path test double.
type fixedAdapter struct {
	bits permmat.BitVec
	err  error
}

func (f fixedAdapter) Solve(_ context.Context, _ *qubo.Model) (permmat.BitVec, error) {
	return f.bits, f.err
}

func TestInterpret_FeasibleSample(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	bits, err := permmat.Encode([]int{0, 1, 2, 3})
	require.NoError(t, err)

	res, err := tour.Interpret(inst, bits)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, []int{0, 1, 2, 3}, res.Order)
	require.Equal(t, 10.0, res.Cost)
	require.Equal(t, bits, res.Raw)
}

func TestInterpret_InfeasibleSampleIsDataNotError(t *testing.T) {
	inst, err := instance.New([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)

	// Row 0 claims two cities; the decode surfaces both matches.
	bits := permmat.BitVec{
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
	}
	res, err := tour.Interpret(inst, bits)
	require.NoError(t, err)
	require.False(t, res.Feasible)
	require.Equal(t, []int{0, 1, 1, 2}, res.Order)
	// Degenerate cycle cost: 0→1 (1) + 1→1 (0) + 1→2 (3) + 2→0 (2).
	require.Equal(t, 6.0, res.Cost)
}

func TestInterpret_ContractViolations(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	_, err = tour.Interpret(nil, permmat.BitVec{1})
	require.ErrorIs(t, err, tour.ErrNilInstance)

	_, err = tour.Interpret(inst, permmat.BitVec{1, 0})
	require.ErrorIs(t, err, permmat.ErrDimensionMismatch)
}

func TestSolve_ExactBackendEndToEnd(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	res, err := tour.Solve(context.Background(), inst, solver.NewExact(inst))
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Len(t, res.Order, 4)
	require.Equal(t, 10.0, res.Cost, "exact backend must yield the optimal tour cost")
}

func TestSolve_AnnealBackendEndToEnd(t *testing.T) {
	inst, err := instance.NewRandom(3, instance.WithSeed(21))
	require.NoError(t, err)

	ad := solver.NewAnneal(solver.WithSeed(21), solver.WithSweeps(300), solver.WithRestarts(4))
	res, err := tour.Solve(context.Background(), inst, ad)
	require.NoError(t, err)

	// Heuristic backend: the sample is whatever annealing found. The pipeline
	// must report it coherently either way.
	require.Len(t, res.Raw, 9)
	if res.Feasible {
		require.Len(t, res.Order, 3)
	}

	// Determinism end to end: repeating the run reproduces the result.
	again, err := tour.Solve(context.Background(), inst, ad)
	require.NoError(t, err)
	require.Equal(t, res, again)
}

func TestSolve_BackendErrorPropagates(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	boom := errors.New("backend exploded")
	_, err = tour.Solve(context.Background(), inst, fixedAdapter{err: boom})
	require.ErrorIs(t, err, boom)
}

func TestSolve_DegenerateSampleFlowsThrough(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	// An empty sample decodes to an empty sequence with cost 0.
	res, err := tour.Solve(context.Background(), inst, fixedAdapter{bits: make(permmat.BitVec, 16)})
	require.NoError(t, err)
	require.False(t, res.Feasible)
	require.Empty(t, res.Order)
	require.Equal(t, 0.0, res.Cost)
}

func TestSolve_NilArguments(t *testing.T) {
	inst, err := instance.New(dist4)
	require.NoError(t, err)

	_, err = tour.Solve(context.Background(), nil, fixedAdapter{})
	require.ErrorIs(t, err, tour.ErrNilInstance)

	_, err = tour.Solve(context.Background(), inst, nil)
	require.ErrorIs(t, err, tour.ErrNilAdapter)
}
