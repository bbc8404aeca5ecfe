// Package bnb provides a deterministic branch-and-bound solver for
// single-runway sequencing and de-icing over core.Instance, with a
// rolling-horizon driver and three de-icing strategies behind a single
// configuration struct.
//
// # What & Why
//
// Sequencing N aircraft on one runway under pairwise separations, hard
// time windows, CTOT slots, holdover times, and runway-hold limits is
// a combinatorial search; bnb keeps it tractable with domain pruning:
//
//   - Complete-order preprocessing: separation-identical aircraft
//     without CTOTs whose release/base/window parameters already imply
//     a relative order are partitioned into sets with a fixed internal
//     order. The search only ever consumes the head of each set, so a
//     single cursor per set replaces any per-flight visited state, and
//     no optimal sequence is excluded.
//   - Dominance rules: at each depth, candidates whose window closes at
//     or before the latest committed release are dropped, and candidates
//     whose window opens after another candidate's window has already
//     closed are deferred.
//   - Admissible lower bound: the cost of the unscheduled remainder is
//     estimated by walking each set as if every flight were scheduled
//     immediately after the last committed one with zero separation,
//     clamped to release times, counting delay only. The estimate
//     never exceeds the cost of any actual completion, so bound
//     pruning never discards an optimal window solution.
//   - Rolling horizon: windows of a fixed size are solved to window
//     optimality; the first aircraft of each best window is committed
//     permanently and the window slides forward.
//
// # Strategies
//
//	Integrated (default) — de-icing times are searched together with
//	  landings and take-offs, one candidate per whole minute across
//	  the feasible de-icing range of each take-off.
//	ByTobt — a de-icing queue is fixed before the search by sorting
//	  de-icing departures by TOBT; the search assigns runway times only.
//	ByCtot — as ByTobt, but sorted by CTOT slot start, falling back to
//	  TOBT for departures without a CTOT.
//
// # Cost
//
// Per flight: delay² (seconds between scheduled time and base time,
// squared) + CTOT violation² (seconds past the slot end) with runway
// hold² (seconds a de-iced aircraft waits at the runway) as a
// tie-break. Costs aggregate by summation; two aggregates compare by
// delay + CTOT violation first, runway hold second.
//
// # Contract
//
//	bb := bnb.BranchBound{Horizon: 10, Strategy: bnb.ByTobt}
//	seq, err := bb.Solve(instance)
//
// On success the sequence has exactly one schedule per flight, indices
// covering {0, …, N−1}. ErrInfeasible reports that some
// rolling-horizon window had no feasible completion; the solver is
// all-or-nothing and never returns partial results. The zero value of
// BranchBound solves the whole instance as one window with integrated
// de-icing.
//
// # Determinism & Concurrency
//
// The search is single-threaded, synchronous, and free of randomness;
// ties break on flight index. Solving the same instance twice yields
// the same cost. Distinct BranchBound values may solve instances
// concurrently; an Instance is only ever read.
package bnb
