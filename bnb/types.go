// Package bnb - configuration and sentinel errors.
//
// Design goals, matching the rest of the module:
//   - Strict sentinels: no fmt.Errorf where a sentinel suffices.
//   - Zero-value defaults: BranchBound{} is a valid, useful solver.
//   - Determinism: configuration carries no seeds, clocks, or limits
//     that could make two identical solves disagree.
package bnb

import "errors"

var (
	// ErrInfeasible is returned when some rolling-horizon window has no
	// feasible completion, and therefore no full sequence exists under
	// the chosen horizon and strategy.
	ErrInfeasible = errors.New("bnb: no feasible sequence")

	// ErrNilInstance is returned when Solve receives a nil instance.
	ErrNilInstance = errors.New("bnb: instance is nil")

	// ErrNegativeHorizon is returned when BranchBound.Horizon is
	// negative; zero means "no rolling horizon".
	ErrNegativeHorizon = errors.New("bnb: horizon must be zero or positive")

	// ErrUnknownStrategy is returned when BranchBound.Strategy is not
	// one of Integrated, ByTobt, or ByCtot.
	ErrUnknownStrategy = errors.New("bnb: unknown de-icing strategy")
)

// DeiceStrategy selects how de-icing times are decided relative to the
// runway sequencing search.
type DeiceStrategy int

const (
	// Integrated assigns landings, take-offs, and de-icing times
	// together in one search. This is the default.
	Integrated DeiceStrategy = iota

	// ByTobt fixes a de-icing queue before the search by sorting
	// de-icing departures by their Target Off-Block Time; the search
	// then assigns runway times only.
	ByTobt

	// ByCtot fixes a de-icing queue before the search by sorting
	// de-icing departures by the start of their CTOT slot, falling back
	// to TOBT for departures without a CTOT.
	ByCtot
)

// String returns the strategy name.
func (s DeiceStrategy) String() string {
	switch s {
	case Integrated:
		return "integrated"
	case ByTobt:
		return "by-tobt"
	case ByCtot:
		return "by-ctot"
	default:
		return "unknown"
	}
}

// BranchBound is a branch-and-bound solver configuration. The zero
// value solves the whole instance as a single window with integrated
// de-icing.
type BranchBound struct {
	// Horizon is the rolling-horizon window size in aircraft. Zero
	// disables rolling: the whole instance is solved as one window.
	Horizon int

	// Strategy selects the de-icing strategy.
	Strategy DeiceStrategy
}
