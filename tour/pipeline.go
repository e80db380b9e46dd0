// Package tour - the backend-to-result pipeline.
package tour

import (
	"context"

	"github.com/quantour/qtsp/instance"
	"github.com/quantour/qtsp/permmat"
	"github.com/quantour/qtsp/qubo"
	"github.com/quantour/qtsp/solver"
)

// Interpret turns a raw backend sample into a Result: pass-through decode,
// feasibility gate, cyclic cost.
//
// Contract:
//   - inst must be non-nil; bits must have length n² (permmat shape contract).
//   - Infeasible samples are NOT errors: the Result carries Feasible=false
//     and the degenerate sequence with its cycle cost.
//
// Complexity: O(n²) time.
func Interpret(inst *instance.Instance, bits permmat.BitVec) (Result, error) {
	if inst == nil {
		return Result{}, ErrNilInstance
	}

	n := inst.N()

	order, err := permmat.Decode(bits, n)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Order:    order,
		Feasible: permmat.IsFeasible(bits, n),
		Raw:      bits,
	}

	// Decoded columns are always within [0, n), so costing cannot fail on
	// range; any error here is a real defect and is surfaced.
	if res.Cost, err = Cost(inst.Matrix(), order); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Solve runs the whole pipeline: build the QUBO model for inst, invoke the
// backend, and interpret its sample. The sample flows directly from the
// adapter into decoding — no manual hand-off.
//
// qopts are forwarded to qubo.Build (e.g. qubo.WithPenalty).
//
// Errors: ErrNilInstance, ErrNilAdapter, plus whatever the model build or the
// backend returns. An infeasible sample is a successful solve with
// Result.Feasible == false.
//
// Complexity: model build O(n³) + backend cost + O(n²) interpretation.
func Solve(ctx context.Context, inst *instance.Instance, ad solver.Adapter, qopts ...qubo.Option) (Result, error) {
	if inst == nil {
		return Result{}, ErrNilInstance
	}
	if ad == nil {
		return Result{}, ErrNilAdapter
	}

	m, err := qubo.Build(inst, qopts...)
	if err != nil {
		return Result{}, err
	}

	bits, err := ad.Solve(ctx, m)
	if err != nil {
		return Result{}, err
	}

	return Interpret(inst, bits)
}
