// Package core - schedules produced by solvers.
package core

import "time"

// Schedule is either an *ArrivalSchedule or a *DepartureSchedule,
// mirroring the Flight union. Solvers produce one Schedule per flight;
// the caller owns the result.
type Schedule interface {
	// FlightIndex returns the index of the scheduled flight within its
	// instance.
	FlightIndex() int
	// FlightTime returns the scheduled runway time: the landing for an
	// arrival, the take-off for a departure.
	FlightTime() time.Time

	isSchedule()
}

// ArrivalSchedule assigns a landing time to an arrival.
type ArrivalSchedule struct {
	// Flight is the flight index within the instance.
	Flight int
	// Landing is the scheduled landing time.
	Landing time.Time
}

// FlightIndex returns the flight index within the instance.
func (s *ArrivalSchedule) FlightIndex() int { return s.Flight }

// FlightTime returns the scheduled landing time.
func (s *ArrivalSchedule) FlightTime() time.Time { return s.Landing }

func (*ArrivalSchedule) isSchedule() {}

// DepartureSchedule assigns a take-off time — and, for de-icing
// departures, a de-icing start time — to a departure.
type DepartureSchedule struct {
	// Flight is the flight index within the instance.
	Flight int
	// Deice is the scheduled de-icing start time; it is non-nil exactly
	// when the departure has de-icing parameters.
	Deice *time.Time
	// Takeoff is the scheduled take-off time.
	Takeoff time.Time
}

// FlightIndex returns the flight index within the instance.
func (s *DepartureSchedule) FlightIndex() int { return s.Flight }

// FlightTime returns the scheduled take-off time.
func (s *DepartureSchedule) FlightTime() time.Time { return s.Takeoff }

func (*DepartureSchedule) isSchedule() {}
