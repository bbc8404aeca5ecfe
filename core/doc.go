// Package core defines the problem model for single-runway sequencing
// and de-icing: flights, time windows, CTOT slots, the pairwise
// separation matrix, validated problem instances, and the schedules a
// solver produces for them.
//
// # What & Why
//
// A runway sequencing problem is a set of N flights — arrivals and
// departures — plus an N×N matrix of minimum separations between
// consecutive runway operations and a global cap on how long a de-iced
// aircraft may hold at the runway. A solution assigns every flight a
// landing or take-off time (and de-icing departures a de-icing start
// time) such that all separations, hard time windows, holdover times,
// and runway-hold limits are respected.
//
// # Types
//
//	Flight    — tagged union: *Arrival | *Departure
//	Arrival   — earliest/base times, optional hard TimeWindow
//	Departure — earliest/base/TOBT times, pushback/taxi/lineup
//	            durations, optional Deice parameters, optional Ctot,
//	            optional hard TimeWindow
//	Schedule  — tagged union: *ArrivalSchedule | *DepartureSchedule
//	Separations — dense N×N duration matrix, (preceding, succeeding)
//	Instance  — flights + separations + max runway hold, validated
//	Solver    — anything that turns an Instance into a Schedule slice
//
// # Release times
//
// No feasible schedule may place a flight before its release time: the
// maximum of its earliest time, base time, window earliest (if any),
// and CTOT earliest (if any). ReleaseTime is the single source of that
// derivation for both flight kinds.
//
// # Invariants (enforced by NewInstance)
//
//   - len(flights) equals the separation matrix order
//   - all durations are non-negative
//   - a departure's holdover time is at least its de-icing duration
//   - CTOT tolerances are non-negative
//
// Violations surface as sentinel errors at construction time, never at
// solve time. All times are absolute, all durations whole seconds.
//
// # Serialization
//
// Flights, schedules, and instances round-trip through JSON using a
// "kind" discriminator, kebab-case keys, naive timestamps, and
// durations as integer seconds. Dataset-specific converters (Milan,
// Heathrow) are external and out of scope.
package core
