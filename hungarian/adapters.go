// SPDX-License-Identifier: MIT

// Package hungarian - public entry points.
//
// Every adapter follows the same three stages:
//  1. Validate the caller's input completely (shape, then finiteness).
//  2. Materialize a private *matrix.Dense that the solver may reduce in place.
//  3. Delegate to solveOwned.
//
// The caller's data is never mutated.
package hungarian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// Solve computes a minimum-cost assignment for a square matrix.Matrix.
//
// Contracts:
//   - cost must be non-nil, square and hold only finite values.
//   - A 0×0 matrix yields an empty Result.
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrInvalidCost (joined with the
// matrix sentinel that detected the problem), or a wrapped hook error.
//
// Complexity: O(n³) time, O(n²) extra space for the private copy.
func Solve(cost matrix.Matrix, opts ...Option) (Result, error) {
	const tag = "Solve"
	if err := validateMatrix(tag, cost); err != nil {
		return Result{}, err
	}
	n := cost.Rows()
	if n == 0 {
		return emptyResult(), nil
	}

	owned, err := ownedCopy(cost)
	if err != nil {
		return Result{}, hungarianErrorf(tag, ErrInvalidCost, err)
	}

	return solveOwned(tag, owned, opts)
}

// SolveSlices is Solve for a [][]float64 cost matrix.
// A nil or empty slice yields an empty Result.
func SolveSlices(cost [][]float64, opts ...Option) (Result, error) {
	const tag = "SolveSlices"
	if err := validateSlices(tag, cost); err != nil {
		return Result{}, err
	}
	if len(cost) == 0 {
		return emptyResult(), nil
	}

	owned, err := matrix.NewDenseFrom(cost)
	if err != nil {
		return Result{}, hungarianErrorf(tag, ErrInvalidShape, err)
	}

	return solveOwned(tag, owned, opts)
}

// SolveWorkers assigns workers to jobs minimizing the sum of cost(w, j).
// cost is evaluated exactly once per (worker, job) pair, workers-major.
//
// Errors:
//   - ErrInvalidShape if len(workers) != len(jobs).
//   - ErrNilCostFunc if cost is nil.
//   - ErrInvalidCost if cost returns NaN or ±Inf.
func SolveWorkers[W, J any](workers []W, jobs []J, cost func(W, J) float64, opts ...Option) (Result, error) {
	const tag = "SolveWorkers"
	if len(workers) != len(jobs) {
		return Result{}, hungarianErrorf(fmt.Sprintf("%s: %d workers, %d jobs", tag, len(workers), len(jobs)),
			ErrInvalidShape, matrix.ErrDimensionMismatch)
	}
	if cost == nil {
		return Result{}, hungarianErrorf(tag, ErrNilCostFunc, nil)
	}
	n := len(workers)
	if n == 0 {
		return emptyResult(), nil
	}

	owned, _ := matrix.NewDense(n, n) // n > 0
	var (
		i, j int
		row  []float64
		v    float64
	)
	for i = 0; i < n; i++ {
		row, _ = owned.RowView(i)
		for j = 0; j < n; j++ {
			v = cost(workers[i], jobs[j])
			if !isFinite(v) {
				return Result{}, hungarianErrorf(fmt.Sprintf("%s: cost(worker %d, job %d)", tag, i, j),
					ErrInvalidCost, matrix.ErrNaNInf)
			}
			row[j] = v
		}
	}

	return solveOwned(tag, owned, opts)
}

// SolvePoints matches from[i] to to[j] minimizing the sum of squared
// Euclidean distances.
//
// Errors:
//   - ErrInvalidShape if len(from) != len(to), or points are empty or differ in dimension.
//   - ErrInvalidCost for non-finite coordinates or overflowing distances.
func SolvePoints(from, to []Point, opts ...Option) (Result, error) {
	const tag = "SolvePoints"
	if len(from) != len(to) {
		return Result{}, hungarianErrorf(fmt.Sprintf("%s: %d sources, %d targets", tag, len(from), len(to)),
			ErrInvalidShape, matrix.ErrDimensionMismatch)
	}
	if len(from) == 0 {
		return emptyResult(), nil
	}
	if err := validatePoints(tag, len(from[0]), from, to); err != nil {
		return Result{}, err
	}

	return SolveWorkers(from, to, SquaredDistance, opts...)
}

// SquaredDistance returns Σ (a[k]-b[k])². a and b must share a dimension.
func SquaredDistance(a, b Point) float64 {
	var (
		sum float64
		d   float64
		k   int
	)
	for k = range a {
		d = a[k] - b[k]
		sum += d * d
	}

	return sum
}

// SolveGonum is Solve for a gonum mat.Matrix (for example *mat.Dense).
// An empty gonum matrix yields an empty Result.
func SolveGonum(cost mat.Matrix, opts ...Option) (Result, error) {
	const tag = "SolveGonum"
	if cost == nil {
		return Result{}, hungarianErrorf(tag, ErrNilMatrix, matrix.ErrNilMatrix)
	}
	if d, ok := cost.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		if d == nil {
			return Result{}, hungarianErrorf(tag, ErrNilMatrix, matrix.ErrNilMatrix)
		}
		return emptyResult(), nil
	}

	r, c := cost.Dims()
	if r != c {
		return Result{}, hungarianErrorf(fmt.Sprintf("%s: %dx%d", tag, r, c), ErrInvalidShape, matrix.ErrDimensionMismatch)
	}
	rows := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j] = cost.At(i, j)
		}
	}

	return SolveSlices(rows, opts...)
}

// validatePoints checks every point has dimension d ≥ 1 with finite coordinates.
func validatePoints(tag string, d int, sets ...[]Point) error {
	if d == 0 {
		return hungarianErrorf(tag+": zero-dimensional point", ErrInvalidShape, matrix.ErrDimensionMismatch)
	}
	var (
		set []Point
		i   int
		p   Point
		v   float64
	)
	for _, set = range sets {
		for i, p = range set {
			if len(p) != d {
				return hungarianErrorf(fmt.Sprintf("%s: point %d has dimension %d, want %d", tag, i, len(p), d),
					ErrInvalidShape, matrix.ErrDimensionMismatch)
			}
			for _, v = range p {
				if !isFinite(v) {
					return hungarianErrorf(fmt.Sprintf("%s: point %d", tag, i), ErrInvalidCost, matrix.ErrNaNInf)
				}
			}
		}
	}

	return nil
}

// ownedCopy returns a *matrix.Dense the solver may mutate.
// *matrix.Dense inputs take the Clone fast-path.
func ownedCopy(cost matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := cost.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	n := cost.Rows()
	owned, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = cost.At(i, j); err != nil {
				return nil, err
			}
			if err = owned.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return owned, nil
}

// solveOwned checks the cost spread and runs the solver on an owned matrix.
func solveOwned(tag string, owned *matrix.Dense, opts []Option) (Result, error) {
	if err := validateSpread(tag, owned); err != nil {
		return Result{}, err
	}

	return newSolver(owned, gatherOptions(opts)).run()
}

// emptyResult is the solution of the 0×0 problem.
func emptyResult() Result {
	return Result{
		Assignment:   []int{},
		SourceLabels: []float64{},
		TargetLabels: []float64{},
	}
}
