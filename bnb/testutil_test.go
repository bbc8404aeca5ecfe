// Package bnb_test — shared fixtures and feasibility assertions.
//
// Helpers here are deliberately small and deterministic: fixed base
// date, explicit builders for the two flight kinds, and one assertion
// that checks every universal feasibility property of a returned
// sequence (completeness, pairwise separation, window/release/HOT/
// runway-hold respect).
package bnb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runseq/core"
)

// at returns the canonical test date at hh:mm:ss.
func at(hh, mm, ss int) time.Time {
	return time.Date(2024, time.February, 10, hh, mm, ss, 0, time.UTC)
}

// uniformSeps builds an n×n matrix with sep everywhere off-diagonal.
func uniformSeps(t *testing.T, n int, sep time.Duration) *core.Separations {
	t.Helper()
	rows := make([][]time.Duration, n)
	for i := range rows {
		rows[i] = make([]time.Duration, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = sep
			}
		}
	}
	seps, err := core.NewSeparations(rows)
	require.NoError(t, err)

	return seps
}

// leaderSeps builds an n×n matrix where the separation depends only on
// the leading flight: byLeader[i] applies to every successor of i.
// Flights sharing a leader class stay separation-identical.
func leaderSeps(t *testing.T, byLeader []time.Duration) *core.Separations {
	t.Helper()
	n := len(byLeader)
	rows := make([][]time.Duration, n)
	for i := range rows {
		rows[i] = make([]time.Duration, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = byLeader[i]
			}
		}
	}
	seps, err := core.NewSeparations(rows)
	require.NoError(t, err)

	return seps
}

// arr builds an arrival with earliest == base.
func arr(base time.Time) *core.Arrival {
	return &core.Arrival{Earliest: base, Base: base}
}

// windowed restricts an arrival to a hard window.
func windowed(a *core.Arrival, earliest time.Time, d time.Duration) *core.Arrival {
	a.Window = &core.TimeWindow{Earliest: earliest, Duration: d}

	return a
}

// dep builds a plain departure with earliest == base and one-minute
// pushback, taxi, and lineup durations.
func dep(base time.Time) *core.Departure {
	return &core.Departure{
		Earliest: base,
		Base:     base,
		Tobt:     base.Add(-10 * time.Minute),
		Pushback: time.Minute,
		Taxi:     time.Minute,
		Lineup:   time.Minute,
	}
}

// deiced adds de-icing parameters to a departure.
func deiced(d *core.Departure, duration, hot time.Duration) *core.Departure {
	d.Deice = &core.Deice{Taxi: time.Minute, Duration: duration, HOT: hot}

	return d
}

// slotted adds a CTOT slot to a departure.
func slotted(d *core.Departure, target time.Time, allowEarly, allowLate time.Duration) *core.Departure {
	d.Ctot = &core.Ctot{Target: target, AllowEarly: allowEarly, AllowLate: allowLate}

	return d
}

// mustInstance builds a validated instance or fails the test.
func mustInstance(t *testing.T, flights []core.Flight, seps *core.Separations, maxHold time.Duration) *core.Instance {
	t.Helper()
	in, err := core.NewInstance(flights, seps, maxHold)
	require.NoError(t, err)

	return in
}

// assertFeasible checks every universal property of a returned
// sequence: one schedule per flight index, pairwise separations
// between consecutive operations, hard windows, release times,
// holdover times, and the runway-hold cap.
func assertFeasible(t *testing.T, in *core.Instance, seq []core.Schedule) {
	t.Helper()

	flights := in.Flights()
	require.Len(t, seq, len(flights), "sequence must schedule every flight")

	seen := make(map[int]bool, len(seq))
	for _, sched := range seq {
		idx := sched.FlightIndex()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(flights))
		require.False(t, seen[idx], "flight %d scheduled twice", idx)
		seen[idx] = true
	}

	for k := 0; k+1 < len(seq); k++ {
		gap := seq[k+1].FlightTime().Sub(seq[k].FlightTime())
		sep := in.Separations().Get(seq[k].FlightIndex(), seq[k+1].FlightIndex())
		require.GreaterOrEqual(t, gap, sep,
			"separation violated between positions %d and %d", k, k+1)
	}

	for _, sched := range seq {
		flight := flights[sched.FlightIndex()]

		require.False(t, sched.FlightTime().Before(flight.ReleaseTime()),
			"flight %d scheduled before its release time", sched.FlightIndex())
		if w := flight.TimeWindow(); w != nil {
			require.True(t, w.Contains(sched.FlightTime()),
				"flight %d scheduled outside its window", sched.FlightIndex())
		}

		switch s := sched.(type) {
		case *core.ArrivalSchedule:
			require.IsType(t, &core.Arrival{}, flight)
		case *core.DepartureSchedule:
			d, ok := flight.(*core.Departure)
			require.True(t, ok, "departure schedule for non-departure flight %d", s.Flight)
			if d.Deice == nil {
				require.Nil(t, s.Deice)

				continue
			}
			require.NotNil(t, s.Deice, "de-icing departure %d scheduled without de-icing", s.Flight)
			sinceDeice := s.Takeoff.Sub(*s.Deice)
			require.LessOrEqual(t, sinceDeice, d.Deice.Duration+d.Deice.HOT,
				"holdover time exceeded for flight %d", s.Flight)
			hold := s.Takeoff.Sub(s.Deice.Add(d.Deice.Duration + d.Taxi + d.Lineup))
			require.LessOrEqual(t, hold, in.MaxRunwayHold,
				"runway hold exceeded for flight %d", s.Flight)
		}
	}
}
