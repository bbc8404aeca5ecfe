// Package core_test — release-time derivation and time primitives.
package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runseq/core"
)

func ft(hh, mm, ss int) time.Time {
	return time.Date(2024, time.February, 10, hh, mm, ss, 0, time.UTC)
}

func TestArrival_ReleaseTime(t *testing.T) {
	// Base after earliest: base wins.
	a := &core.Arrival{Earliest: ft(11, 55, 0), Base: ft(12, 0, 0)}
	require.Equal(t, ft(12, 0, 0), a.ReleaseTime())

	// Earliest after base: earliest wins.
	a = &core.Arrival{Earliest: ft(12, 5, 0), Base: ft(12, 0, 0)}
	require.Equal(t, ft(12, 5, 0), a.ReleaseTime())

	// A window opening later than both raises the release further.
	a.Window = &core.TimeWindow{Earliest: ft(12, 10, 0), Duration: 10 * time.Minute}
	require.Equal(t, ft(12, 10, 0), a.ReleaseTime())
}

func TestDeparture_ReleaseTime(t *testing.T) {
	d := &core.Departure{Earliest: ft(12, 0, 0), Base: ft(12, 0, 0), Tobt: ft(11, 50, 0)}
	require.Equal(t, ft(12, 0, 0), d.ReleaseTime())

	// A CTOT slot starting after the base raises the release.
	d.Ctot = &core.Ctot{Target: ft(12, 10, 0), AllowEarly: 300 * time.Second, AllowLate: 600 * time.Second}
	require.Equal(t, ft(12, 5, 0), d.ReleaseTime())

	// A window opening later still wins over the CTOT start.
	d.Window = &core.TimeWindow{Earliest: ft(12, 7, 0), Duration: time.Hour}
	require.Equal(t, ft(12, 7, 0), d.ReleaseTime())
}

func TestCtot_Bounds(t *testing.T) {
	c := &core.Ctot{Target: ft(12, 0, 0), AllowEarly: 300 * time.Second, AllowLate: 600 * time.Second}

	require.Equal(t, ft(11, 55, 0), c.Earliest())
	require.Equal(t, ft(12, 10, 0), c.Latest())

	require.True(t, c.Contains(ft(11, 55, 0)))
	require.True(t, c.Contains(ft(12, 10, 0)))
	require.False(t, c.Contains(ft(11, 54, 59)))
	require.False(t, c.Contains(ft(12, 10, 1)))
}

func TestTimeWindow_Bounds(t *testing.T) {
	w := &core.TimeWindow{Earliest: ft(12, 0, 0), Duration: 10 * time.Minute}

	require.Equal(t, ft(12, 10, 0), w.Latest())
	require.True(t, w.Contains(ft(12, 0, 0)))
	require.True(t, w.Contains(ft(12, 10, 0)))
	require.False(t, w.Contains(ft(11, 59, 59)))
	require.False(t, w.Contains(ft(12, 10, 1)))

	// A zero-duration window admits exactly one instant.
	pin := &core.TimeWindow{Earliest: ft(12, 0, 0)}
	require.True(t, pin.Contains(ft(12, 0, 0)))
	require.False(t, pin.Contains(ft(12, 0, 1)))
}

func TestSchedule_FlightTime(t *testing.T) {
	landing := &core.ArrivalSchedule{Flight: 3, Landing: ft(12, 0, 0)}
	require.Equal(t, 3, landing.FlightIndex())
	require.Equal(t, ft(12, 0, 0), landing.FlightTime())

	deice := ft(11, 53, 0)
	takeoff := &core.DepartureSchedule{Flight: 5, Deice: &deice, Takeoff: ft(12, 0, 0)}
	require.Equal(t, 5, takeoff.FlightIndex())
	require.Equal(t, ft(12, 0, 0), takeoff.FlightTime())
}
