// Package core - validated problem instances.
//
// NewInstance is the single gate through which flights and separations
// become a solvable problem: every structural invariant is checked
// here, once, so solvers never re-validate. Only sentinel errors are
// returned; there are no panics on user input.
package core

import (
	"errors"
	"time"
)

var (
	// ErrFlightCountMismatch indicates the number of flights does not
	// match the order of the separation matrix.
	ErrFlightCountMismatch = errors.New("core: flight count does not match separation matrix order")

	// ErrNilSeparations indicates a nil separation matrix.
	ErrNilSeparations = errors.New("core: separation matrix is nil")

	// ErrNilFlight indicates a nil entry in the flight slice.
	ErrNilFlight = errors.New("core: nil flight")

	// ErrNegativeDuration indicates a negative duration on a flight or
	// on the instance itself (pushback, taxi, lineup, de-icing, window,
	// CTOT tolerance, or maximum runway hold).
	ErrNegativeDuration = errors.New("core: negative duration")

	// ErrHotBelowDeiceDuration indicates a departure whose holdover
	// time is shorter than its de-icing duration: its anti-icing
	// protection would expire before de-icing even finishes.
	ErrHotBelowDeiceDuration = errors.New("core: holdover time shorter than de-icing duration")
)

// Instance is a runway sequencing problem: an ordered set of flights,
// their pairwise separation matrix, and the maximum runway hold
// allowed for any de-iced aircraft. Instances are immutable inputs to
// solvers; construct them with NewInstance.
type Instance struct {
	flights     []Flight
	separations *Separations

	// MaxRunwayHold is the maximum duration any de-iced aircraft may
	// hold at the runway between being ready and taking off.
	MaxRunwayHold time.Duration
}

// NewInstance builds a validated instance. It fails with a sentinel
// error when the flight count does not match the separation matrix
// order, any duration is negative, or a departure's holdover time is
// shorter than its de-icing duration.
//
// The flight slice is copied; the separation matrix is retained as-is.
//
// Complexity: O(n) over flights (the matrix was validated at its own
// construction).
func NewInstance(flights []Flight, separations *Separations, maxRunwayHold time.Duration) (*Instance, error) {
	if separations == nil {
		return nil, ErrNilSeparations
	}
	if len(flights) != separations.Len() {
		return nil, ErrFlightCountMismatch
	}
	if maxRunwayHold < 0 {
		return nil, ErrNegativeDuration
	}
	for _, flight := range flights {
		if err := validateFlight(flight); err != nil {
			return nil, err
		}
	}

	return &Instance{
		flights:       append([]Flight(nil), flights...),
		separations:   separations,
		MaxRunwayHold: maxRunwayHold,
	}, nil
}

// Flights returns the flights of the instance. The slice must not be
// mutated while a solve is in progress.
func (in *Instance) Flights() []Flight { return in.flights }

// Separations returns the separation matrix of the instance.
func (in *Instance) Separations() *Separations { return in.separations }

// Solve runs the given solver on the instance.
func (in *Instance) Solve(solver Solver) ([]Schedule, error) {
	return solver.Solve(in)
}

func validateFlight(flight Flight) error {
	switch f := flight.(type) {
	case *Arrival:
		return validateWindow(f.Window)
	case *Departure:
		if f.Pushback < 0 || f.Taxi < 0 || f.Lineup < 0 {
			return ErrNegativeDuration
		}
		if f.Deice != nil {
			if f.Deice.Taxi < 0 || f.Deice.Duration < 0 || f.Deice.HOT < 0 {
				return ErrNegativeDuration
			}
			if f.Deice.HOT < f.Deice.Duration {
				return ErrHotBelowDeiceDuration
			}
		}
		if f.Ctot != nil && (f.Ctot.AllowEarly < 0 || f.Ctot.AllowLate < 0) {
			return ErrNegativeDuration
		}

		return validateWindow(f.Window)
	case nil:
		return ErrNilFlight
	default:
		// The Flight union is sealed; no further variants exist.
		return ErrNilFlight
	}
}

func validateWindow(w *TimeWindow) error {
	if w != nil && w.Duration < 0 {
		return ErrNegativeDuration
	}

	return nil
}
