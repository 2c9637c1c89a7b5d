// SPDX-License-Identifier: MIT

// Package hungarian - validation helpers shared by the adapters.
//
// Design principles:
//   - Validation completes before any cost buffer is mutated.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst case; no allocations.
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateSlices checks that cost is n×n with finite entries.
// A nil or empty outer slice is the valid 0×0 problem.
func validateSlices(tag string, cost [][]float64) error {
	var (
		n    = len(cost)
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(cost[i]) != n {
			return hungarianErrorf(fmt.Sprintf("%s: row %d has %d entries, want %d", tag, i, len(cost[i]), n),
				ErrInvalidShape, matrix.ErrDimensionMismatch)
		}
	}
	for i = 0; i < n; i++ {
		for j, v = range cost[i] {
			if !isFinite(v) {
				return hungarianErrorf(fmt.Sprintf("%s: cost(%d,%d)", tag, i, j), ErrInvalidCost, matrix.ErrNaNInf)
			}
		}
	}

	return nil
}

// validateMatrix runs the matrix validators in priority order and maps their
// sentinels onto this package's taxonomy.
func validateMatrix(tag string, cost matrix.Matrix) error {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return hungarianErrorf(tag, ErrNilMatrix, err)
	}
	if err := matrix.ValidateSquare(cost); err != nil {
		return hungarianErrorf(tag, ErrInvalidShape, err)
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return hungarianErrorf(tag, ErrInvalidCost, err)
	}

	return nil
}

// validateSpread rejects matrices whose max-min is not representable, since
// reduction would then produce +Inf slacks.
func validateSpread(tag string, cost *matrix.Dense) error {
	lo, hi := math.Inf(1), math.Inf(-1)
	cost.Do(func(_, _ int, v float64) bool {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		return true
	})
	if !isFinite(hi - lo) {
		return hungarianErrorf(fmt.Sprintf("%s: spread %g..%g", tag, lo, hi), ErrInvalidCost, matrix.ErrNaNInf)
	}

	return nil
}
