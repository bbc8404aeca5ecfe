// Package core - flight model and time primitives.
//
// Flight is a closed tagged union over *Arrival and *Departure. The
// union is sealed by an unexported marker method so that the solver's
// type switches stay exhaustive. Release-time derivation lives here,
// next to the fields it reads.
package core

import "time"

// Flight is either an *Arrival or a *Departure.
//
// The interface is sealed: only the two variants in this package
// implement it. Use a type switch to recover the concrete variant.
type Flight interface {
	// EarliestTime returns the earliest possible operating time.
	EarliestTime() time.Time
	// BaseTime returns the reference time against which delay is measured.
	BaseTime() time.Time
	// TimeWindow returns the hard time window, or nil if unconstrained.
	TimeWindow() *TimeWindow
	// ReleaseTime returns the earliest time any feasible schedule may
	// place this flight: the max of its earliest time, base time,
	// window earliest (if any), and CTOT earliest (if any).
	ReleaseTime() time.Time

	isFlight()
}

// Arrival is a flight that lands on the runway.
type Arrival struct {
	// Earliest is the earliest possible landing time.
	Earliest time.Time
	// Base is the reference time for the delay cost.
	Base time.Time
	// Window optionally restricts the landing to a hard time window.
	Window *TimeWindow
}

// EarliestTime returns the earliest possible landing time.
func (a *Arrival) EarliestTime() time.Time { return a.Earliest }

// BaseTime returns the delay reference time.
func (a *Arrival) BaseTime() time.Time { return a.Base }

// TimeWindow returns the hard landing window, or nil.
func (a *Arrival) TimeWindow() *TimeWindow { return a.Window }

// ReleaseTime returns the earliest feasible landing time.
func (a *Arrival) ReleaseTime() time.Time {
	release := laterOf(a.Earliest, a.Base)
	if a.Window != nil {
		release = laterOf(release, a.Window.Earliest)
	}

	return release
}

func (*Arrival) isFlight() {}

// Departure is a flight that takes off from the runway, optionally
// de-icing beforehand.
type Departure struct {
	// Earliest is the earliest possible take-off time.
	Earliest time.Time
	// Base is the reference time for the delay cost.
	Base time.Time
	// Tobt is the target off-block time: when the aircraft is planned
	// to begin pushback.
	Tobt time.Time
	// Pushback is how long pushback from the stand takes.
	Pushback time.Duration
	// Deice optionally holds the de-icing parameters; nil means the
	// departure takes off without de-icing.
	Deice *Deice
	// Taxi is the taxi duration from the de-icing station (or the
	// stand, when no de-icing is required) to the runway.
	Taxi time.Duration
	// Lineup is how long lining up on the runway takes.
	Lineup time.Duration
	// Ctot optionally holds the ATC-assigned take-off slot.
	Ctot *Ctot
	// Window optionally restricts the take-off to a hard time window.
	Window *TimeWindow
}

// EarliestTime returns the earliest possible take-off time.
func (d *Departure) EarliestTime() time.Time { return d.Earliest }

// BaseTime returns the delay reference time.
func (d *Departure) BaseTime() time.Time { return d.Base }

// TimeWindow returns the hard take-off window, or nil.
func (d *Departure) TimeWindow() *TimeWindow { return d.Window }

// ReleaseTime returns the earliest feasible take-off time.
func (d *Departure) ReleaseTime() time.Time {
	release := laterOf(d.Earliest, d.Base)
	if d.Window != nil {
		release = laterOf(release, d.Window.Earliest)
	}
	if d.Ctot != nil {
		release = laterOf(release, d.Ctot.Earliest())
	}

	return release
}

func (*Departure) isFlight() {}

// Deice holds the de-icing parameters of a departure.
type Deice struct {
	// Taxi is the taxi duration from the stand to the de-icing station.
	Taxi time.Duration
	// Duration is how long the de-icing operation itself takes.
	Duration time.Duration
	// HOT is the holdover time: the maximum interval between finishing
	// de-icing and commencing take-off before protection expires.
	HOT time.Duration
}

// Ctot is a Calculated Take-Off Time: an ATC-assigned slot around a
// target time with early and late tolerances.
type Ctot struct {
	// Target is the assigned take-off time.
	Target time.Time
	// AllowEarly is how much earlier than Target the take-off may be.
	AllowEarly time.Duration
	// AllowLate is how much later than Target the take-off may be.
	AllowLate time.Duration
}

// Earliest returns the start of the slot, Target - AllowEarly.
func (c *Ctot) Earliest() time.Time { return c.Target.Add(-c.AllowEarly) }

// Latest returns the end of the slot, Target + AllowLate.
func (c *Ctot) Latest() time.Time { return c.Target.Add(c.AllowLate) }

// Contains reports whether t lies within the slot, bounds included.
func (c *Ctot) Contains(t time.Time) bool {
	return !t.Before(c.Earliest()) && !t.After(c.Latest())
}

// TimeWindow is a hard time window represented as its earliest time
// plus a duration, closed on both ends.
type TimeWindow struct {
	// Earliest is the start of the window.
	Earliest time.Time
	// Duration is the length of the window; Latest = Earliest + Duration.
	Duration time.Duration
}

// Latest returns the end of the window.
func (w *TimeWindow) Latest() time.Time { return w.Earliest.Add(w.Duration) }

// Contains reports whether t lies within the window, bounds included.
func (w *TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Earliest) && !t.After(w.Latest())
}

// laterOf returns the later of two times.
func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}

	return a
}
