// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// IsPermutation reports whether a is a permutation of {0..len(a)-1}.
// Complexity: O(n) time and space.
func IsPermutation(a []int) bool {
	seen := make([]bool, len(a))
	var v int
	for _, v = range a {
		if v < 0 || v >= len(a) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// AssignmentCost sums cost[s][assignment[s]] over all sources.
//
// Errors:
//   - ErrNilMatrix / ErrInvalidShape from matrix validation.
//   - ErrInvalidAssignment if len(assignment) != n or it is not a permutation.
//
// Complexity: O(n).
func AssignmentCost(cost matrix.Matrix, assignment []int) (float64, error) {
	const tag = "AssignmentCost"
	if err := matrix.ValidateNotNil(cost); err != nil {
		return 0, hungarianErrorf(tag, ErrNilMatrix, err)
	}
	if err := matrix.ValidateSquare(cost); err != nil {
		return 0, hungarianErrorf(tag, ErrInvalidShape, err)
	}
	if len(assignment) != cost.Rows() {
		return 0, hungarianErrorf(fmt.Sprintf("%s: len %d, order %d", tag, len(assignment), cost.Rows()),
			ErrInvalidAssignment, nil)
	}
	if !IsPermutation(assignment) {
		return 0, hungarianErrorf(tag, ErrInvalidAssignment, nil)
	}

	var (
		total float64
		s, t  int
		v     float64
		err   error
	)
	for s, t = range assignment {
		if v, err = cost.At(s, t); err != nil {
			return 0, hungarianErrorf(tag, ErrInvalidShape, err)
		}
		total += v
	}

	return total, nil
}
