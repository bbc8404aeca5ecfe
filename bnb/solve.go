// Package bnb - the strategy facade.
package bnb

import "github.com/katalvlaran/runseq/core"

// compile-time check: BranchBound satisfies the solver contract.
var _ core.Solver = BranchBound{}

// Solve sequences every flight of the instance under the configured
// horizon and de-icing strategy.
//
// On success the result has exactly one schedule per flight, indices
// covering {0, …, N−1}, respecting all separations, windows, holdover
// times, and the runway-hold cap.
//
// Errors:
//   - ErrNilInstance, ErrNegativeHorizon, ErrUnknownStrategy for
//     malformed input or configuration.
//   - ErrInfeasible when some rolling-horizon window has no feasible
//     completion; there are no partial results.
func (bb BranchBound) Solve(in *core.Instance) ([]core.Schedule, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	if bb.Horizon < 0 {
		return nil, ErrNegativeHorizon
	}

	switch bb.Strategy {
	case ByTobt:
		return solveDecomposed(in, bb.Horizon, func(dep, other *core.Departure) int {
			return dep.Tobt.Compare(other.Tobt)
		})
	case ByCtot:
		return solveDecomposed(in, bb.Horizon, func(dep, other *core.Departure) int {
			depKey, otherKey := dep.Tobt, other.Tobt
			if dep.Ctot != nil {
				depKey = dep.Ctot.Earliest()
			}
			if other.Ctot != nil {
				otherKey = other.Ctot.Earliest()
			}

			return depKey.Compare(otherKey)
		})
	case Integrated:
		return solveIntegrated(in, bb.Horizon)
	default:
		return nil, ErrUnknownStrategy
	}
}
