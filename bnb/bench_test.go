// Package bnb_test — benchmarks for the branch-and-bound solver.
//
// Policy:
//   - Deterministic instances built outside the timer; measure only the
//     solve.
//   - Sizes tuned to finish comfortably on CI while still exercising
//     the preprocessor, dominance rules, and bound pruning.
package bnb_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/runseq/bnb"
	"github.com/katalvlaran/runseq/core"
)

// benchInstance builds n flights alternating between two separation
// classes: windowless arrivals and plain departures with staggered
// bases, so the search has real interleaving decisions at every depth.
func benchInstance(b *testing.B, n int) *core.Instance {
	b.Helper()

	base := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	flights := make([]core.Flight, n)
	rows := make([][]time.Duration, n)
	for i := range flights {
		t := base.Add(time.Duration(i) * 50 * time.Second)
		if i%2 == 0 {
			flights[i] = &core.Arrival{Earliest: t, Base: t}
		} else {
			flights[i] = &core.Departure{
				Earliest: t, Base: t, Tobt: t.Add(-10 * time.Minute),
				Pushback: time.Minute, Taxi: time.Minute, Lineup: time.Minute,
			}
		}
		rows[i] = make([]time.Duration, n)
		for j := range rows[i] {
			if i == j {
				continue
			}
			if i%2 == 0 {
				rows[i][j] = 2 * time.Minute
			} else {
				rows[i][j] = time.Minute
			}
		}
	}

	separations, err := core.NewSeparations(rows)
	if err != nil {
		b.Fatal(err)
	}
	instance, err := core.NewInstance(flights, separations, 300*time.Second)
	if err != nil {
		b.Fatal(err)
	}

	return instance
}

func benchSolve(b *testing.B, bb bnb.BranchBound, n int) {
	b.Helper()
	instance := benchInstance(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bb.Solve(instance); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Integrated_n12_full(b *testing.B) {
	benchSolve(b, bnb.BranchBound{Strategy: bnb.Integrated}, 12)
}

func BenchmarkSolve_Integrated_n16_horizon8(b *testing.B) {
	benchSolve(b, bnb.BranchBound{Strategy: bnb.Integrated, Horizon: 8}, 16)
}

func BenchmarkSolve_ByTobt_n16_horizon8(b *testing.B) {
	benchSolve(b, bnb.BranchBound{Strategy: bnb.ByTobt, Horizon: 8}, 16)
}
