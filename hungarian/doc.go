// Package hungarian solves the linear assignment problem with the
// Kuhn–Munkres ("Hungarian") algorithm.
//
// Given n sources, n targets and an n×n matrix of finite costs, it returns a
// bijection sources→targets of minimum total cost.
//
//   - Complexity: O(n³) time
//   - Memory:     O(n²) (one private copy of the cost matrix)
//
// Algorithm outline:
//
//  1. Reduce: subtract every row minimum, then every column minimum. Any full
//     bijection shifts by the same constant, so optimal assignments survive.
//  2. Label: a dual-feasible labeling (sourceLabel = 0, targetLabel = column minima).
//  3. Greedy: match free zero-slack pairs in index order (WithGreedyBootstrap).
//  4. Phases: for each still-unmatched source, grow an alternating tree of
//     zero-slack edges, adjusting the labels by the minimum slack whenever the
//     tree gets stuck, until a free target is reached; flip that path.
//  5. Extract the permutation and the final labels.
//
// Entry points (distinct names instead of overloads):
//
//	Solve(matrix.Matrix)              - any matrix.Matrix
//	SolveSlices([][]float64)          - plain slices
//	SolveWorkers(workers, jobs, cost) - generic pairs with a cost function
//	SolvePoints(from, to)             - squared Euclidean distance
//	SolveGonum(mat.Matrix)            - gonum matrices
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNilMatrix, ErrInvalidShape, ErrNilCostFunc, ErrInvalidCost, ErrInvalidAssignment.
//
// Validation finishes before any buffer is touched. Internal invariant
// violations panic with ErrInvariantViolation; they indicate a bug, not bad input.
//
// Not supported: rectangular matrices, maximization (negate the costs),
// enumerating alternative optima, incremental re-solving.
//
// Ties: among equal minimum slacks the lowest target index wins, so results
// are reproducible bit for bit on the same input.
//
// Observability: WithOnPhase and WithOnAugment expose every phase and may abort
// the solve by returning an error. WithLogger attaches a logr.Logger that
// receives V(1) records ("greedy bootstrap", "augmented", "solved").
//
// Concurrency: every call owns its state; concurrent calls are safe.
//
// Example:
//
//	res, err := hungarian.SolveSlices([][]float64{{1, 2}, {2, 1}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Assignment, res.Cost) // [0 1] 2
package hungarian
