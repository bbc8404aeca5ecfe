// Package bnb - the branch-and-bound driver.
//
// The search is an explicit-stack DFS rather than recursion: at N ≈ 60
// a recursive formulation risks deep call chains, and the "rewind the
// partial solution to depth d" step a LIFO stack requires is a plain
// truncation here instead of unwinding call frames.
//
// Rationale (succinct):
//  1. Nodes carry their depth, originating set, and precomputed cost;
//     popping a node first rewinds the committed chain to the node's
//     depth, undoing set cursors and cost along the way.
//  2. A node is skipped when the committed cost plus its own cost
//     already reaches the incumbent (raw cost-prune); after committing
//     it, the admissible remainder estimate is added before branching
//     further (bound-prune). Checking the raw cost first avoids
//     double-counting the entering node in the estimate.
//  3. Reaching the window end records a new incumbent and backtracks;
//     the incumbent is only ever replaced by a strictly cheaper one.
//  4. Candidate emission per depth applies two dominance rules over
//     disjoint time windows and orders the survivors so the earliest
//     release is explored first.
package bnb

import (
	"slices"
	"sort"
	"time"

	"github.com/katalvlaran/runseq/core"
)

// node is one candidate assignment on the DFS stack.
type node struct {
	sched  core.Schedule
	depth  int // length of the committed chain when the node was emitted
	setIdx int // originating complete-order set
	cost   Cost
}

// searchState is the working state shared by all windows of one solve.
type searchState struct {
	sets      [][]int // complete-order partition; shrinks as flights commit
	nextInSet []int   // per-set cursor: how many of its flights are committed
	current   []node  // committed chain: permanent prefix + window-local tail
	best      []node  // best solution of the window being (or last) solved
}

func newSearchState(in *core.Instance) *searchState {
	sets := completeOrderSets(in)

	return &searchState{
		sets:      sets,
		nextInSet: make([]int, len(sets)),
		current:   make([]node, 0, len(in.Flights())),
		best:      nil,
	}
}

// expandFunc enumerates the feasible schedules of one candidate flight
// against the current partial sequence. Returning nothing filters the
// candidate silently.
type expandFunc func(flight core.Flight, flightIdx int, in *core.Instance, st *searchState) []core.Schedule

// branchBound searches the window [start, end) to optimality given the
// committed prefix current[:start]. On return, st.best holds the best
// window solution found (empty when the window is infeasible) and
// st.current is rewound to the prefix. Set cursors are left as the
// final rewind leaves them; the rolling driver resets them between
// windows.
func branchBound(in *core.Instance, st *searchState, nodes *[]node, expand expandFunc, start, end int) {
	var currentCost Cost
	bestCost := maxCost

	branches(in, st, expand, nodes)

	for len(*nodes) > 0 {
		n := (*nodes)[len(*nodes)-1]
		*nodes = (*nodes)[:len(*nodes)-1]

		// Rewind the committed chain down to the node's depth.
		for len(st.current) > n.depth {
			removed := st.current[len(st.current)-1]
			st.current = st.current[:len(st.current)-1]
			st.nextInSet[removed.setIdx]--
			currentCost = currentCost.sub(removed.cost)
		}

		if !currentCost.add(n.cost).less(bestCost) {
			continue
		}

		lastTime := n.sched.FlightTime()
		currentCost = currentCost.add(n.cost)
		st.nextInSet[n.setIdx]++
		st.current = append(st.current, n)

		if len(st.current) == end {
			bestCost = currentCost
			st.best = slices.Clone(st.current[start:end])

			continue
		}

		if !currentCost.add(estimatedRemainingCost(in, st, lastTime)).less(bestCost) {
			continue
		}

		branches(in, st, expand, nodes)
	}

	st.current = st.current[:start]
}

// branches emits the candidate nodes for the next depth onto the
// stack: the head flight of every complete-order set, filtered by two
// dominance rules over disjoint time windows, expanded into feasible
// schedules.
func branches(in *core.Instance, st *searchState, expand expandFunc, nodes *[]node) {
	flights := in.Flights()

	// Latest release among committed flights; candidates whose window
	// closes at or before it can never follow the committed prefix.
	var latestRelease time.Time
	haveCommitted := len(st.current) > 0
	for i := range st.current {
		release := flights[st.current[i].sched.FlightIndex()].ReleaseTime()
		if release.After(latestRelease) || i == 0 {
			latestRelease = release
		}
	}

	type candidate struct {
		flight    core.Flight
		flightIdx int
		setIdx    int
	}
	next := make([]candidate, 0, len(st.sets))
	for setIdx, set := range st.sets {
		cursor := st.nextInSet[setIdx]
		if cursor >= len(set) {
			continue
		}
		flightIdx := set[cursor]
		flight := flights[flightIdx]
		if haveCommitted {
			if w := flight.TimeWindow(); w != nil && !w.Latest().After(latestRelease) {
				continue // already too late to follow the committed prefix
			}
		}
		next = append(next, candidate{flight: flight, flightIdx: flightIdx, setIdx: setIdx})
	}

	sort.Slice(next, func(a, b int) bool {
		if c := next[a].flight.ReleaseTime().Compare(next[b].flight.ReleaseTime()); c != 0 {
			return c < 0
		}

		return next[a].flightIdx < next[b].flightIdx
	})

	// Earliest-wins rule: some candidate's window closes before this
	// one even opens, so that candidate must be sequenced first.
	var nextLatest time.Time
	haveLatest := false
	for _, cand := range next {
		if w := cand.flight.TimeWindow(); w != nil {
			if !haveLatest || w.Latest().Before(nextLatest) {
				nextLatest = w.Latest()
				haveLatest = true
			}
		}
	}
	if haveLatest {
		kept := next[:0]
		for _, cand := range next {
			if w := cand.flight.TimeWindow(); w == nil || !w.Earliest.After(nextLatest) {
				kept = append(kept, cand)
			}
		}
		next = kept
	}

	// The last pushed node is explored first, so the best candidate is
	// pushed last. The survivors are sorted ascending by release time
	// and the earliest release is potentially the best; iterating in
	// reverse makes it the first node to be explored.
	depth := len(st.current)
	for i := len(next) - 1; i >= 0; i-- {
		cand := next[i]
		for _, sched := range expand(cand.flight, cand.flightIdx, in, st) {
			var cost Cost
			switch s := sched.(type) {
			case *core.ArrivalSchedule:
				cost = arrivalCost(s, cand.flight.(*core.Arrival))
			case *core.DepartureSchedule:
				cost = departureCost(s, cand.flight.(*core.Departure))
			}
			*nodes = append(*nodes, node{sched: sched, depth: depth, setIdx: cand.setIdx, cost: cost})
		}
	}
}
