// Package bnb - node expansion shared by every strategy.
//
// Expansion turns one candidate flight into zero or more feasible
// schedules against the current partial sequence. Arrivals and
// departures without de-icing expand the same way under every
// strategy; only de-icing departures differ (see decomposed.go and
// integrated.go).
package bnb

import (
	"time"

	"github.com/katalvlaran/runseq/core"
)

// sepEnd returns the earliest runway time the separation matrix allows
// for the candidate: the maximum over all committed flights c of
// flight_time(c) + sep[c, candidate]. ok is false when nothing is
// committed yet.
func sepEnd(in *core.Instance, st *searchState, flightIdx int) (end time.Time, ok bool) {
	seps := in.Separations()
	for i := range st.current {
		sched := st.current[i].sched
		t := sched.FlightTime().Add(seps.Get(sched.FlightIndex(), flightIdx))
		if !ok || t.After(end) {
			end, ok = t, true
		}
	}

	return end, ok
}

// withinWindow reports whether t satisfies the window; a nil window
// never constrains.
func withinWindow(t time.Time, w *core.TimeWindow) bool {
	return w == nil || w.Contains(t)
}

// expandArrival schedules the landing at the earliest feasible time:
// the later of the release time and the separation-implied earliest.
// Nothing is emitted when that time misses the window.
func expandArrival(arr *core.Arrival, flightIdx int, in *core.Instance, st *searchState) []core.Schedule {
	landing := arr.ReleaseTime()
	if end, ok := sepEnd(in, st, flightIdx); ok && end.After(landing) {
		landing = end
	}

	if !withinWindow(landing, arr.Window) {
		return nil
	}

	return []core.Schedule{&core.ArrivalSchedule{Flight: flightIdx, Landing: landing}}
}

// expandDirectDeparture schedules a take-off without de-icing at the
// earliest feasible time, like expandArrival.
func expandDirectDeparture(dep *core.Departure, flightIdx int, in *core.Instance, st *searchState) []core.Schedule {
	takeoff := dep.ReleaseTime()
	if end, ok := sepEnd(in, st, flightIdx); ok && end.After(takeoff) {
		takeoff = end
	}

	if !withinWindow(takeoff, dep.Window) {
		return nil
	}

	return []core.Schedule{&core.DepartureSchedule{Flight: flightIdx, Takeoff: takeoff}}
}
