// Package bnb - the cost model and the admissible remainder bound.
//
// Every scheduled flight contributes three squared-seconds terms:
//
//	delay          (flight time − base time)²
//	CTOT violation (take-off − CTOT latest)² when outside the slot
//	runway hold    (take-off − lineup − taxi − de-ice duration −
//	                de-ice start)² for de-iced departures
//
// Aggregates compare by delay + CTOT violation first and runway hold
// second, so holding at the runway only ever breaks ties between
// otherwise equally delayed sequences.
package bnb

import (
	"math"
	"time"

	"github.com/katalvlaran/runseq/core"
)

// Cost is the cost of one schedule or the sum over several. The zero
// value is the zero cost.
type Cost struct {
	// Delay is the squared delay in seconds².
	Delay uint64
	// CtotViolation is the squared CTOT violation in seconds².
	CtotViolation uint64
	// RunwayHold is the squared runway hold in seconds².
	RunwayHold uint64
}

// maxCost is the infinite sentinel: it compares greater than or equal
// to every reachable cost.
var maxCost = Cost{Delay: math.MaxUint64}

// key is the primary comparison key: delay plus CTOT violation.
func (c Cost) key() uint64 { return c.Delay + c.CtotViolation }

// less orders costs by key, tie-broken by runway hold.
func (c Cost) less(other Cost) bool {
	if c.key() != other.key() {
		return c.key() < other.key()
	}

	return c.RunwayHold < other.RunwayHold
}

func (c Cost) add(other Cost) Cost {
	return Cost{
		Delay:         c.Delay + other.Delay,
		CtotViolation: c.CtotViolation + other.CtotViolation,
		RunwayHold:    c.RunwayHold + other.RunwayHold,
	}
}

func (c Cost) sub(other Cost) Cost {
	return Cost{
		Delay:         c.Delay - other.Delay,
		CtotViolation: c.CtotViolation - other.CtotViolation,
		RunwayHold:    c.RunwayHold - other.RunwayHold,
	}
}

// squaredSeconds returns d in whole seconds, squared. The sign of d is
// irrelevant.
func squaredSeconds(d time.Duration) uint64 {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = -secs
	}

	return uint64(secs) * uint64(secs)
}

// arrivalCost is the delay cost of a scheduled landing.
func arrivalCost(sched *core.ArrivalSchedule, arr *core.Arrival) Cost {
	return Cost{Delay: squaredSeconds(sched.Landing.Sub(arr.Base))}
}

// departureCost is the delay, CTOT violation, and runway hold cost of
// a scheduled take-off.
func departureCost(sched *core.DepartureSchedule, dep *core.Departure) Cost {
	cost := Cost{Delay: squaredSeconds(sched.Takeoff.Sub(dep.Base))}

	if dep.Ctot != nil && !dep.Ctot.Contains(sched.Takeoff) {
		cost.CtotViolation = squaredSeconds(sched.Takeoff.Sub(dep.Ctot.Latest()))
	}

	if sched.Deice != nil {
		ready := sched.Deice.Add(dep.Deice.Duration + dep.Taxi + dep.Lineup)
		cost.RunwayHold = squaredSeconds(sched.Takeoff.Sub(ready))
	}

	return cost
}

// scheduleCost is the cost of one schedule against its flight.
func scheduleCost(sched core.Schedule, in *core.Instance) Cost {
	switch s := sched.(type) {
	case *core.ArrivalSchedule:
		return arrivalCost(s, in.Flights()[s.Flight].(*core.Arrival))
	case *core.DepartureSchedule:
		return departureCost(s, in.Flights()[s.Flight].(*core.Departure))
	default:
		return Cost{}
	}
}

// SolutionCost sums the cost of every schedule in the solution against
// the instance it was produced from.
func SolutionCost(solution []core.Schedule, in *core.Instance) Cost {
	var sum Cost
	for _, sched := range solution {
		sum = sum.add(scheduleCost(sched, in))
	}

	return sum
}

// estimatedRemainingCost bounds the cost of scheduling every aircraft
// not yet committed. Each complete-order set is walked in order,
// pretending its flights are scheduled immediately after the last
// committed flight with zero separation, clamped to release times;
// only the delay term is summed. Omitting separations, CTOT violation,
// and runway hold keeps the estimate admissible: it never exceeds the
// cost of any actual completion, so pruning on it never discards an
// optimal window solution.
func estimatedRemainingCost(in *core.Instance, st *searchState, lastTime time.Time) Cost {
	var estimate uint64
	for setIdx, set := range st.sets {
		prev := lastTime
		for _, flightIdx := range set[st.nextInSet[setIdx]:] {
			flight := in.Flights()[flightIdx]
			at := flight.ReleaseTime()
			if prev.After(at) {
				at = prev
			}
			estimate += squaredSeconds(at.Sub(flight.BaseTime()))
			prev = at
		}
	}

	return Cost{Delay: estimate}
}
