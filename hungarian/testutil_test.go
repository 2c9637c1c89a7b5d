// Package hungarian_test provides lightweight helpers shared across the
// *_test.go files of this package.
package hungarian_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/kuhnmunkres/hungarian"
)

const (
	// epsTiny absorbs round-off when labels are compared on real-valued costs.
	epsTiny = 1e-9

	// seedDet is the deterministic seed for every generated instance.
	seedDet = uint64(42)
)

// newRand returns a deterministic PCG stream for test instances.
func newRand(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seedDet, stream))
}

// randomInts builds an n×n matrix of integers in [lo, hi]; integer costs keep
// all solver arithmetic exact.
func randomInts(rng *rand.Rand, n, lo, hi int) [][]float64 {
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			out[i][j] = float64(lo + rng.IntN(hi-lo+1))
		}
	}

	return out
}

// randomReals builds an n×n matrix of reals in [lo, hi).
func randomReals(rng *rand.Rand, n int, lo, hi float64) [][]float64 {
	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			out[i][j] = lo + (hi-lo)*rng.Float64()
		}
	}

	return out
}

// cloneRows deep-copies a [][]float64.
func cloneRows(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = append([]float64(nil), a[i]...)
	}

	return out
}

// sumCost returns Σ cost[s][assignment[s]].
func sumCost(cost [][]float64, assignment []int) float64 {
	var total float64
	for s, t := range assignment {
		total += cost[s][t]
	}

	return total
}

// bruteForce enumerates all n! permutations and returns the minimum total cost.
func bruteForce(t *testing.T, cost [][]float64) float64 {
	t.Helper()
	n := len(cost)
	require.LessOrEqual(t, n, 8, "brute force is only meant for tiny instances")
	best := math.Inf(1)
	for _, perm := range combin.Permutations(n, n) {
		if c := sumCost(cost, perm); c < best {
			best = c
		}
	}

	return best
}

// requireOptimalResult checks bijection, cost bookkeeping, dual feasibility,
// zero slack on matched pairs and strong duality.
func requireOptimalResult(t *testing.T, cost [][]float64, res hungarian.Result) {
	t.Helper()
	n := len(cost)
	require.Len(t, res.Assignment, n)
	require.True(t, hungarian.IsPermutation(res.Assignment), "not a permutation: %v", res.Assignment)
	require.InDelta(t, sumCost(cost, res.Assignment), res.Cost, epsTiny*float64(n+1))

	require.Len(t, res.SourceLabels, n)
	require.Len(t, res.TargetLabels, n)
	var duals float64
	for s := 0; s < n; s++ {
		duals += res.SourceLabels[s] + res.TargetLabels[s]
		for tt := 0; tt < n; tt++ {
			sl := cost[s][tt] - res.SourceLabels[s] - res.TargetLabels[tt]
			require.GreaterOrEqual(t, sl, -epsTiny, "negative slack at (%d,%d)", s, tt)
		}
		sl := cost[s][res.Assignment[s]] - res.SourceLabels[s] - res.TargetLabels[res.Assignment[s]]
		require.InDelta(t, 0, sl, epsTiny, "matched edge (%d,%d) has slack", s, res.Assignment[s])
	}
	require.InDelta(t, res.Cost, duals, epsTiny*float64(n+1))
}
