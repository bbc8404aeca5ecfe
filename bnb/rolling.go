// Package bnb - the rolling-horizon orchestrator.
//
// A horizon of h solves windows of h aircraft: the first window
// [0, min(h, N)) is searched to window optimality, the first aircraft
// of its best solution is committed permanently, the window slides
// forward by one, and the process repeats until the last window covers
// flight N−1. The final sequence is the committed prefix plus the last
// window's best solution. Truncating the search to windows trades
// global optimality for tractability; a zero horizon solves the whole
// instance as one window.
package bnb

import "github.com/katalvlaran/runseq/core"

func branchBoundRolling(in *core.Instance, horizon int, expand expandFunc, rebuild func(*searchState)) ([]core.Schedule, error) {
	flightCount := len(in.Flights())

	st := newSearchState(in)

	end := flightCount
	if horizon > 0 && horizon < flightCount {
		end = horizon
	}

	nodes := make([]node, 0, flightCount)

	if rebuild != nil {
		rebuild(st)
	}
	branchBound(in, st, &nodes, expand, 0, end)

	for windowEnd := end + 1; windowEnd <= flightCount; windowEnd++ {
		if len(st.best) == 0 {
			return nil, ErrInfeasible
		}

		// Commit the first aircraft of the best window permanently.
		fixed := st.best[0]
		st.best = nil
		fixedIdx := fixed.sched.FlightIndex()
		st.current = append(st.current, fixed)

		for i := range st.nextInSet {
			st.nextInSet[i] = 0
		}
		for setIdx, set := range st.sets {
			st.sets[setIdx] = removeFlight(set, fixedIdx)
		}

		if rebuild != nil {
			rebuild(st)
		}
		branchBound(in, st, &nodes, expand, windowEnd-end, windowEnd)
	}

	if len(st.best) == 0 {
		return nil, ErrInfeasible
	}

	solution := make([]core.Schedule, 0, flightCount)
	for i := range st.current {
		solution = append(solution, st.current[i].sched)
	}
	for i := range st.best {
		solution = append(solution, st.best[i].sched)
	}

	return solution, nil
}

// removeFlight filters flightIdx out of the set in place.
func removeFlight(set []int, flightIdx int) []int {
	kept := set[:0]
	for _, idx := range set {
		if idx != flightIdx {
			kept = append(kept, idx)
		}
	}

	return kept
}
