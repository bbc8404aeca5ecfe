// Package core_test — separation matrix construction and access.
package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runseq/core"
)

func TestSeparations_New(t *testing.T) {
	seps, err := core.NewSeparations([][]time.Duration{
		{0, 90 * time.Second},
		{2 * time.Minute, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, seps.Len())

	// Asymmetry is allowed and preserved.
	require.Equal(t, 90*time.Second, seps.Get(0, 1))
	require.Equal(t, 2*time.Minute, seps.Get(1, 0))
}

func TestSeparations_Sentinels(t *testing.T) {
	_, err := core.NewSeparations([][]time.Duration{
		{0, time.Minute},
		{time.Minute},
	})
	require.ErrorIs(t, err, core.ErrSeparationsNotSquare)

	_, err = core.NewSeparations([][]time.Duration{
		{0, -time.Second},
		{time.Minute, 0},
	})
	require.ErrorIs(t, err, core.ErrNegativeSeparation)
}

func TestSeparations_SetAndRows(t *testing.T) {
	seps, err := core.NewSeparations([][]time.Duration{
		{0, time.Minute},
		{time.Minute, 0},
	})
	require.NoError(t, err)

	seps.Set(0, 1, 3*time.Minute)
	require.Equal(t, 3*time.Minute, seps.Get(0, 1))

	// Rows returns an independent copy.
	rows := seps.Rows()
	rows[1][0] = time.Hour
	require.Equal(t, time.Minute, seps.Get(1, 0))
}

func TestSeparations_OutOfRangePanics(t *testing.T) {
	seps, err := core.NewSeparations([][]time.Duration{{0}})
	require.NoError(t, err)

	require.Panics(t, func() { seps.Get(0, 1) })
	require.Panics(t, func() { seps.Set(-1, 0, time.Second) })
	require.Panics(t, func() { seps.Set(0, 0, -time.Second) })
}
