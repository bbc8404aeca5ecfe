// Package bnb - integrated de-icing.
//
// Under the integrated strategy the de-icing start is part of the
// search space: each feasible take-off expands into one candidate per
// whole minute across the de-icing range that respects the runway-hold
// cap, the holdover time, and the previous de-icing in the sequence.
package bnb

import (
	"time"

	"github.com/katalvlaran/runseq/core"
)

// deiceStep is the granularity of integrated de-icing candidates.
const deiceStep = time.Minute

func solveIntegrated(in *core.Instance, horizon int) ([]core.Schedule, error) {
	return branchBoundRolling(in, horizon, expandIntegrated, nil)
}

func expandIntegrated(flight core.Flight, flightIdx int, in *core.Instance, st *searchState) []core.Schedule {
	switch f := flight.(type) {
	case *core.Arrival:
		return expandArrival(f, flightIdx, in, st)
	case *core.Departure:
		if f.Deice == nil {
			return expandDirectDeparture(f, flightIdx, in, st)
		}

		return expandDeicedDeparture(f, flightIdx, in, st)
	default:
		return nil
	}
}

// expandDeicedDeparture enumerates the feasible (de-ice, take-off)
// pairs of a de-icing departure. The take-off is the earliest time
// allowed by the release, the separations, and the previous de-icing
// in the sequence; the de-icing start then ranges over whole minutes
// from the earliest start that respects the runway-hold cap, the
// holdover time, and the previous de-icing finish (whichever binds) up
// to the latest start that still reaches the runway in time.
//
// Candidates are emitted latest-de-ice first: the search explores the
// most recently pushed node first, and the earliest de-icing start —
// the tightest packing of the de-icing chain — is empirically the most
// promising, so emitting it last makes it the first explored.
func expandDeicedDeparture(dep *core.Departure, flightIdx int, in *core.Instance, st *searchState) []core.Schedule {
	// Finish time of the latest de-icing in the committed sequence.
	var prevDeiceEnd time.Time
	havePrev := false
	for i := range st.current {
		sched, ok := st.current[i].sched.(*core.DepartureSchedule)
		if !ok || sched.Deice == nil {
			continue
		}
		prev := in.Flights()[sched.Flight].(*core.Departure)
		end := sched.Deice.Add(prev.Deice.Duration)
		if !havePrev || end.After(prevDeiceEnd) {
			prevDeiceEnd = end
			havePrev = true
		}
	}

	takeoff := dep.ReleaseTime()
	if end, ok := sepEnd(in, st, flightIdx); ok && end.After(takeoff) {
		takeoff = end
	}
	if havePrev {
		if chained := prevDeiceEnd.Add(dep.Deice.Duration + dep.Taxi + dep.Lineup); chained.After(takeoff) {
			takeoff = chained
		}
	}

	if !withinWindow(takeoff, dep.Window) {
		return nil
	}

	latest := takeoff.Add(-(dep.Lineup + dep.Taxi + dep.Deice.Duration))
	earliest := takeoff.Add(-(in.MaxRunwayHold + dep.Lineup + dep.Taxi + dep.Deice.Duration))
	if byHot := takeoff.Add(-(dep.Deice.HOT + dep.Deice.Duration)); byHot.After(earliest) {
		earliest = byHot
	}
	if havePrev && prevDeiceEnd.After(earliest) {
		earliest = prevDeiceEnd
	}
	if latest.Before(earliest) {
		return nil
	}

	steps := int(latest.Sub(earliest) / deiceStep)
	scheds := make([]core.Schedule, 0, steps+1)
	for k := steps; k >= 0; k-- {
		deice := earliest.Add(time.Duration(k) * deiceStep)
		scheds = append(scheds, &core.DepartureSchedule{Flight: flightIdx, Deice: &deice, Takeoff: takeoff})
	}

	return scheds
}
