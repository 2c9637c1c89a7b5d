// Package hungarian_test - property checks on generated instances:
// optimality against exhaustive search, duality, shift invariance.
package hungarian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kuhnmunkres/hungarian"
)

func TestSolve_OptimalAgainstBruteForce(t *testing.T) {
	rng := newRand(2)
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 40; trial++ {
			cost := randomInts(rng, n, 0, 9) // narrow range => many ties
			res, err := hungarian.SolveSlices(cost)
			require.NoError(t, err)
			require.Equal(t, bruteForce(t, cost), res.Cost, "n=%d trial=%d cost=%v", n, trial, cost)
			requireOptimalResult(t, cost, res)
		}
	}
}

func TestSolve_OptimalRealCosts(t *testing.T) {
	rng := newRand(3)
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			cost := randomReals(rng, n, -100, 100)
			res, err := hungarian.SolveSlices(cost)
			require.NoError(t, err)
			require.InDelta(t, bruteForce(t, cost), res.Cost, 1e-6)
			requireOptimalResult(t, cost, res)
		}
	}
}

func TestSolve_BijectionLarge(t *testing.T) {
	rng := newRand(4)
	for _, n := range []int{10, 37, 80} {
		cost := randomInts(rng, n, 0, 1000)
		res, err := hungarian.SolveSlices(cost)
		require.NoError(t, err)
		requireOptimalResult(t, cost, res)
	}
}

func TestSolve_RowAndColumnShift(t *testing.T) {
	rng := newRand(5)
	const shift = 17.0
	for trial := 0; trial < 25; trial++ {
		n := 2 + trial%5
		cost := randomInts(rng, n, 0, 30)
		base, err := hungarian.SolveSlices(cost)
		require.NoError(t, err)

		row := rng.IntN(n)
		rowShifted := cloneRows(cost)
		for j := range rowShifted[row] {
			rowShifted[row][j] += shift
		}
		res, err := hungarian.SolveSlices(rowShifted)
		require.NoError(t, err)
		require.Equal(t, base.Cost+shift, res.Cost)
		require.Equal(t, base.Cost, sumCost(cost, res.Assignment), "row shift changed optimality")

		col := rng.IntN(n)
		colShifted := cloneRows(cost)
		for i := range colShifted {
			colShifted[i][col] -= shift
		}
		res, err = hungarian.SolveSlices(colShifted)
		require.NoError(t, err)
		require.Equal(t, base.Cost-shift, res.Cost)
		require.Equal(t, base.Cost, sumCost(cost, res.Assignment), "column shift changed optimality")
	}
}

func TestSolve_GreedyBootstrapIrrelevantToCost(t *testing.T) {
	rng := newRand(6)
	for trial := 0; trial < 30; trial++ {
		cost := randomInts(rng, 1+trial%8, -5, 5)
		on, err := hungarian.SolveSlices(cost)
		require.NoError(t, err)
		off, err := hungarian.SolveSlices(cost, hungarian.WithGreedyBootstrap(false))
		require.NoError(t, err)
		require.Equal(t, on.Cost, off.Cost)
		requireOptimalResult(t, cost, off)
	}
}
