// Package core - JSON codec for flights, schedules, and instances.
//
// Wire shape:
//   - tagged unions carry a "kind" field ("arrival" | "departure")
//   - keys are kebab-case
//   - durations are integer seconds
//   - times are naive local timestamps, "2006-01-02T15:04:05"
//
// Decoding an Instance re-runs NewInstance validation, so a malformed
// document can never yield an invalid instance.
package core

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownKind indicates a flight or schedule document whose "kind"
// field is neither "arrival" nor "departure".
var ErrUnknownKind = errors.New(`core: unknown "kind" in document`)

const (
	timeLayout = "2006-01-02T15:04:05"

	kindArrival   = "arrival"
	kindDeparture = "departure"
)

// naiveTime serializes a time.Time as a naive timestamp without a zone.
type naiveTime time.Time

func (t naiveTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(timeLayout))
}

func (t *naiveTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return err
	}
	*t = naiveTime(parsed)

	return nil
}

// seconds serializes a time.Duration as a whole number of seconds.
type seconds time.Duration

func (s seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(time.Duration(s) / time.Second))
}

func (s *seconds) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = seconds(time.Duration(n) * time.Second)

	return nil
}

type windowJSON struct {
	Earliest naiveTime `json:"earliest"`
	Duration seconds   `json:"duration"`
}

func newWindowJSON(w *TimeWindow) *windowJSON {
	if w == nil {
		return nil
	}

	return &windowJSON{Earliest: naiveTime(w.Earliest), Duration: seconds(w.Duration)}
}

func (w *windowJSON) window() *TimeWindow {
	if w == nil {
		return nil
	}

	return &TimeWindow{Earliest: time.Time(w.Earliest), Duration: time.Duration(w.Duration)}
}

type ctotJSON struct {
	Target     naiveTime `json:"target"`
	AllowEarly seconds   `json:"allow-early"`
	AllowLate  seconds   `json:"allow-late"`
}

type deiceJSON struct {
	Taxi     seconds `json:"taxi-duration"`
	Duration seconds `json:"duration"`
	HOT      seconds `json:"hot"`
}

type flightJSON struct {
	Kind     string      `json:"kind"`
	Earliest naiveTime   `json:"earliest-time"`
	Base     naiveTime   `json:"base-time"`
	Tobt     *naiveTime  `json:"tobt,omitempty"`
	Pushback *seconds    `json:"pushback-duration,omitempty"`
	Deice    *deiceJSON  `json:"deice,omitempty"`
	Taxi     *seconds    `json:"taxi-duration,omitempty"`
	Lineup   *seconds    `json:"lineup-duration,omitempty"`
	Ctot     *ctotJSON   `json:"ctot,omitempty"`
	Window   *windowJSON `json:"window,omitempty"`
}

// MarshalJSON encodes the arrival with kind "arrival".
func (a *Arrival) MarshalJSON() ([]byte, error) {
	return json.Marshal(flightJSON{
		Kind:     kindArrival,
		Earliest: naiveTime(a.Earliest),
		Base:     naiveTime(a.Base),
		Window:   newWindowJSON(a.Window),
	})
}

// MarshalJSON encodes the departure with kind "departure".
func (d *Departure) MarshalJSON() ([]byte, error) {
	doc := flightJSON{
		Kind:     kindDeparture,
		Earliest: naiveTime(d.Earliest),
		Base:     naiveTime(d.Base),
		Tobt:     ref(naiveTime(d.Tobt)),
		Pushback: ref(seconds(d.Pushback)),
		Taxi:     ref(seconds(d.Taxi)),
		Lineup:   ref(seconds(d.Lineup)),
		Window:   newWindowJSON(d.Window),
	}
	if d.Deice != nil {
		doc.Deice = &deiceJSON{
			Taxi:     seconds(d.Deice.Taxi),
			Duration: seconds(d.Deice.Duration),
			HOT:      seconds(d.Deice.HOT),
		}
	}
	if d.Ctot != nil {
		doc.Ctot = &ctotJSON{
			Target:     naiveTime(d.Ctot.Target),
			AllowEarly: seconds(d.Ctot.AllowEarly),
			AllowLate:  seconds(d.Ctot.AllowLate),
		}
	}

	return json.Marshal(doc)
}

// UnmarshalFlight decodes a single kind-tagged flight document.
func UnmarshalFlight(data []byte) (Flight, error) {
	var doc flightJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	switch doc.Kind {
	case kindArrival:
		return &Arrival{
			Earliest: time.Time(doc.Earliest),
			Base:     time.Time(doc.Base),
			Window:   doc.Window.window(),
		}, nil
	case kindDeparture:
		dep := &Departure{
			Earliest: time.Time(doc.Earliest),
			Base:     time.Time(doc.Base),
			Window:   doc.Window.window(),
		}
		if doc.Tobt != nil {
			dep.Tobt = time.Time(*doc.Tobt)
		}
		if doc.Pushback != nil {
			dep.Pushback = time.Duration(*doc.Pushback)
		}
		if doc.Taxi != nil {
			dep.Taxi = time.Duration(*doc.Taxi)
		}
		if doc.Lineup != nil {
			dep.Lineup = time.Duration(*doc.Lineup)
		}
		if doc.Deice != nil {
			dep.Deice = &Deice{
				Taxi:     time.Duration(doc.Deice.Taxi),
				Duration: time.Duration(doc.Deice.Duration),
				HOT:      time.Duration(doc.Deice.HOT),
			}
		}
		if doc.Ctot != nil {
			dep.Ctot = &Ctot{
				Target:     time.Time(doc.Ctot.Target),
				AllowEarly: time.Duration(doc.Ctot.AllowEarly),
				AllowLate:  time.Duration(doc.Ctot.AllowLate),
			}
		}

		return dep, nil
	default:
		return nil, ErrUnknownKind
	}
}

type scheduleJSON struct {
	Kind    string     `json:"kind"`
	Flight  int        `json:"flight-index"`
	Landing *naiveTime `json:"landing,omitempty"`
	Deice   *naiveTime `json:"deice,omitempty"`
	Takeoff *naiveTime `json:"takeoff,omitempty"`
}

// MarshalJSON encodes the schedule with kind "arrival".
func (s *ArrivalSchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(scheduleJSON{
		Kind:    kindArrival,
		Flight:  s.Flight,
		Landing: ref(naiveTime(s.Landing)),
	})
}

// MarshalJSON encodes the schedule with kind "departure".
func (s *DepartureSchedule) MarshalJSON() ([]byte, error) {
	doc := scheduleJSON{
		Kind:    kindDeparture,
		Flight:  s.Flight,
		Takeoff: ref(naiveTime(s.Takeoff)),
	}
	if s.Deice != nil {
		doc.Deice = ref(naiveTime(*s.Deice))
	}

	return json.Marshal(doc)
}

// UnmarshalSchedule decodes a single kind-tagged schedule document.
func UnmarshalSchedule(data []byte) (Schedule, error) {
	var doc scheduleJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	switch doc.Kind {
	case kindArrival:
		sched := &ArrivalSchedule{Flight: doc.Flight}
		if doc.Landing != nil {
			sched.Landing = time.Time(*doc.Landing)
		}

		return sched, nil
	case kindDeparture:
		sched := &DepartureSchedule{Flight: doc.Flight}
		if doc.Takeoff != nil {
			sched.Takeoff = time.Time(*doc.Takeoff)
		}
		if doc.Deice != nil {
			deice := time.Time(*doc.Deice)
			sched.Deice = &deice
		}

		return sched, nil
	default:
		return nil, ErrUnknownKind
	}
}

type instanceJSON struct {
	Flights       []json.RawMessage `json:"flights"`
	Separations   [][]seconds       `json:"separations"`
	MaxRunwayHold seconds           `json:"max-runway-hold-duration"`
}

// MarshalJSON encodes the instance with flights, the separation
// matrix in seconds, and the maximum runway hold.
func (in *Instance) MarshalJSON() ([]byte, error) {
	doc := instanceJSON{
		Flights:       make([]json.RawMessage, len(in.flights)),
		Separations:   make([][]seconds, in.separations.Len()),
		MaxRunwayHold: seconds(in.MaxRunwayHold),
	}
	for i, flight := range in.flights {
		raw, err := json.Marshal(flight)
		if err != nil {
			return nil, err
		}
		doc.Flights[i] = raw
	}
	for i, row := range in.separations.Rows() {
		sep := make([]seconds, len(row))
		for j, d := range row {
			sep[j] = seconds(d)
		}
		doc.Separations[i] = sep
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes and re-validates the instance; invariant
// violations surface as the same sentinels NewInstance returns.
func (in *Instance) UnmarshalJSON(data []byte) error {
	var doc instanceJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	flights := make([]Flight, len(doc.Flights))
	for i, raw := range doc.Flights {
		flight, err := UnmarshalFlight(raw)
		if err != nil {
			return err
		}
		flights[i] = flight
	}
	rows := make([][]time.Duration, len(doc.Separations))
	for i, row := range doc.Separations {
		rows[i] = make([]time.Duration, len(row))
		for j, sep := range row {
			rows[i][j] = time.Duration(sep)
		}
	}
	separations, err := NewSeparations(rows)
	if err != nil {
		return err
	}
	built, err := NewInstance(flights, separations, time.Duration(doc.MaxRunwayHold))
	if err != nil {
		return err
	}
	*in = *built

	return nil
}

// ref returns a pointer to v; a tiny helper for optional JSON fields.
func ref[T any](v T) *T { return &v }
