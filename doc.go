// Package runseq solves the integrated runway sequencing and de-icing
// problem for a single runway: given a set of arrivals and departures
// with earliest operating times, optional hard time windows, CTOT
// slots, de-icing requirements, taxi and lineup durations, and a
// pairwise separation matrix, it produces a feasible sequence that
// assigns each aircraft a landing or take-off time (and, for de-icing
// departures, a de-icing start time) while minimizing a weighted cost
// over delay, CTOT violation, and runway hold.
//
// 🛬 What is runseq?
//
//	A deterministic, single-threaded branch-and-bound engine with
//	domain-specific pruning that keeps 60-aircraft instances tractable:
//
//	  • Complete-order preprocessing — separation-identical aircraft
//	    are fixed into a provably-optimal relative order up front
//	  • Disjoint time-window dominance rules — candidates that can no
//	    longer (or must not yet) be sequenced are dropped per depth
//	  • Admissible lower bounds — the remainder estimate never
//	    overestimates, so no optimal window solution is pruned
//	  • Rolling horizon — solve a fixed-size window, commit its first
//	    aircraft, slide forward
//
// Everything is organized under two packages:
//
//	core/ — problem model: flights, time windows, CTOTs, the separation
//	        matrix, validated instances, schedules, and the JSON codec
//	bnb/  — the solver: cost model, preprocessor, node expansion for
//	        three de-icing strategies, B&B driver, rolling horizon
//
// The core is agnostic of I/O: it consumes an in-memory instance and
// produces an in-memory sequence. Dataset converters, visualisers, and
// command-line drivers live with their consumers, not here.
//
//	go get github.com/katalvlaran/runseq
package runseq
