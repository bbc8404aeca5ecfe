// Package bnb - decomposed de-icing strategies.
//
// Under a decomposed strategy the de-icing order and start times are
// fixed before the runway search: uncommitted de-icing departures are
// sorted by a strategy-supplied key (TOBT, or CTOT slot start with a
// TOBT fallback) and packed back-to-back, each starting no earlier
// than its release allows and no earlier than the previous de-icing
// finishes. The search then consults the queue instead of branching on
// de-icing times, and the queue is rebuilt every time the rolling
// horizon commits a flight.
package bnb

import (
	"sort"
	"time"

	"github.com/katalvlaran/runseq/core"
)

// departureCompare orders two de-icing departures in the queue; it
// returns a negative, zero, or positive value like time.Time.Compare.
type departureCompare func(dep, other *core.Departure) int

func solveDecomposed(in *core.Instance, horizon int, compare departureCompare) ([]core.Schedule, error) {
	queue := make(map[int]time.Time, len(in.Flights()))

	rebuild := func(st *searchState) {
		buildDeiceQueue(in, st, queue, compare)
	}
	expand := func(flight core.Flight, flightIdx int, in *core.Instance, st *searchState) []core.Schedule {
		switch f := flight.(type) {
		case *core.Arrival:
			return expandArrival(f, flightIdx, in, st)
		case *core.Departure:
			if f.Deice == nil {
				return expandDirectDeparture(f, flightIdx, in, st)
			}

			return expandQueuedDeparture(f, flightIdx, in, st, queue)
		default:
			return nil
		}
	}

	return branchBoundRolling(in, horizon, expand, rebuild)
}

// expandQueuedDeparture schedules a de-icing departure whose de-icing
// start was fixed by the queue. The take-off is the earliest time
// allowed by the de-icing chain, the release time, and the
// separations; nothing is emitted when it misses the window, exceeds
// the holdover time, or holds at the runway longer than allowed.
func expandQueuedDeparture(dep *core.Departure, flightIdx int, in *core.Instance, st *searchState, queue map[int]time.Time) []core.Schedule {
	deice := queue[flightIdx]

	takeoff := deice.Add(dep.Deice.Duration + dep.Taxi + dep.Lineup)
	if release := dep.ReleaseTime(); release.After(takeoff) {
		takeoff = release
	}
	if end, ok := sepEnd(in, st, flightIdx); ok && end.After(takeoff) {
		takeoff = end
	}

	feasible := withinWindow(takeoff, dep.Window) &&
		!takeoff.After(deice.Add(dep.Deice.Duration+dep.Deice.HOT)) &&
		!takeoff.After(deice.Add(dep.Deice.Duration+dep.Taxi+in.MaxRunwayHold+dep.Lineup))
	if !feasible {
		return nil
	}

	return []core.Schedule{&core.DepartureSchedule{Flight: flightIdx, Deice: &deice, Takeoff: takeoff}}
}

// buildDeiceQueue recomputes the de-icing start of every de-icing
// departure not yet committed. Departures are packed in comparator
// order: each starts at the latest of
//
//	release − lineup − taxi − de-ice duration  (ready exactly at release)
//	release − HOT − de-ice duration            (protection reaches release)
//	previous de-icing finish
//
// seeded with the finish time of the last committed de-icing, if any.
func buildDeiceQueue(in *core.Instance, st *searchState, queue map[int]time.Time, compare departureCompare) {
	type entry struct {
		flightIdx int
		dep       *core.Departure
	}

	committed := make(map[int]bool, len(st.current))
	for i := range st.current {
		committed[st.current[i].sched.FlightIndex()] = true
	}

	remaining := make([]entry, 0, len(in.Flights()))
	for flightIdx, flight := range in.Flights() {
		dep, ok := flight.(*core.Departure)
		if !ok || dep.Deice == nil || committed[flightIdx] {
			continue
		}
		remaining = append(remaining, entry{flightIdx: flightIdx, dep: dep})
	}
	sort.Slice(remaining, func(a, b int) bool {
		if c := compare(remaining[a].dep, remaining[b].dep); c != 0 {
			return c < 0
		}

		return remaining[a].flightIdx < remaining[b].flightIdx
	})

	// Finish time of the most recently committed de-icing, if any.
	var lastEnd time.Time
	haveLast := false
	for i := range st.current {
		sched, ok := st.current[i].sched.(*core.DepartureSchedule)
		if !ok || sched.Deice == nil {
			continue
		}
		dep := in.Flights()[sched.Flight].(*core.Departure)
		end := sched.Deice.Add(dep.Deice.Duration)
		if !haveLast || end.After(lastEnd) {
			lastEnd = end
			haveLast = true
		}
	}

	clear(queue)
	for _, e := range remaining {
		release := e.dep.ReleaseTime()
		deice := release.Add(-(e.dep.Lineup + e.dep.Taxi + e.dep.Deice.Duration))
		if byHot := release.Add(-(e.dep.Deice.HOT + e.dep.Deice.Duration)); byHot.After(deice) {
			deice = byHot
		}
		if haveLast && lastEnd.After(deice) {
			deice = lastEnd
		}

		lastEnd = deice.Add(e.dep.Deice.Duration)
		haveLast = true

		queue[e.flightIdx] = deice
	}
}
