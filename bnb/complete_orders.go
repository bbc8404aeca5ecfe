// Package bnb - complete-order preprocessing.
//
// Two flights are separation-identical when swapping one for the other
// changes no separation against any third flight. Between two such
// flights a complete order exists when neither has a CTOT and their
// release times, base times, and window ends are all ordered the same
// way — any optimal sequence then schedules them in that order, so the
// pair never needs to be branched on in both directions.
package bnb

import (
	"sort"

	"github.com/katalvlaran/runseq/core"
)

// completeOrderSets greedily partitions flight indices into minimal
// sets whose members are pairwise separation-identical and
// complete-ordered (in either direction), then fixes the order within
// each set ascending by (release time, base time, window latest,
// index). The search may only ever consume the head of each set, which
// enforces the intra-set order for free.
//
// The partition is greedy in input order: each flight joins the first
// compatible set, or opens a new one. It is correct, not uniquely
// minimal.
//
// Complexity: O(n³) worst case (n² pairs × n third-flight scans);
// instances are small enough (N ≈ 60) that this is negligible next to
// the search itself.
func completeOrderSets(in *core.Instance) [][]int {
	flightCount := len(in.Flights())
	sets := make([][]int, 0, flightCount)

	for j := 0; j < flightCount; j++ {
		assigned := false
		for setIdx, set := range sets {
			compatible := true
			for _, i := range set {
				if !separationIdentical(in, i, j) ||
					!(completeOrderExists(in, i, j) || completeOrderExists(in, j, i)) {
					compatible = false

					break
				}
			}
			if compatible {
				sets[setIdx] = append(set, j)
				assigned = true

				break
			}
		}
		if !assigned {
			sets = append(sets, []int{j})
		}
	}

	for _, set := range sets {
		sortWithinSet(in, set)
	}

	return sets
}

// separationIdentical reports whether flights i and j require the same
// separations against every third flight, in both directions.
func separationIdentical(in *core.Instance, i, j int) bool {
	seps := in.Separations()
	for k := 0; k < len(in.Flights()); k++ {
		if k == i || k == j {
			continue
		}
		if seps.Get(i, k) != seps.Get(j, k) || seps.Get(k, i) != seps.Get(k, j) {
			return false
		}
	}

	return true
}

// completeOrderExists reports whether any feasible sequence must place
// flight i no later than flight j: both lack a CTOT, and i's release
// time, base time, and window end are all no greater than j's.
func completeOrderExists(in *core.Instance, i, j int) bool {
	flight := in.Flights()[i]
	other := in.Flights()[j]

	// A CTOT on either flight blocks the inference: the slot may force
	// the nominally later flight ahead.
	return !hasCtot(flight) && !hasCtot(other) &&
		!flight.ReleaseTime().After(other.ReleaseTime()) &&
		!flight.BaseTime().After(other.BaseTime()) &&
		compareWindowLatest(flight, other) <= 0
}

func hasCtot(flight core.Flight) bool {
	dep, ok := flight.(*core.Departure)

	return ok && dep.Ctot != nil
}

// compareWindowLatest orders two flights by the end of their time
// windows. A flight without a window ranks greatest; when the other
// flight has no window the comparison is considered equal.
func compareWindowLatest(flight, other core.Flight) int {
	fw, ow := flight.TimeWindow(), other.TimeWindow()
	switch {
	case ow == nil:
		return 0
	case fw == nil:
		return +1
	default:
		return fw.Latest().Compare(ow.Latest())
	}
}

// sortWithinSet fixes the intra-set order: ascending by release time,
// base time, window latest (a flight without a window after any
// windowed one), and finally flight index (always unique).
func sortWithinSet(in *core.Instance, set []int) {
	flights := in.Flights()
	sort.Slice(set, func(a, b int) bool {
		flight, other := flights[set[a]], flights[set[b]]
		if c := flight.ReleaseTime().Compare(other.ReleaseTime()); c != 0 {
			return c < 0
		}
		if c := flight.BaseTime().Compare(other.BaseTime()); c != 0 {
			return c < 0
		}
		fw, ow := flight.TimeWindow(), other.TimeWindow()
		switch {
		case fw != nil && ow != nil:
			if c := fw.Latest().Compare(ow.Latest()); c != 0 {
				return c < 0
			}
		case fw != nil:
			return true // a windowed flight sorts before an unwindowed one
		case ow != nil:
			return false
		}

		return set[a] < set[b]
	})
}
