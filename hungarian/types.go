// SPDX-License-Identifier: MIT

package hungarian

// Unassigned marks a source without a target in Result.Assignment.
// It only appears if the solver's internal invariant was broken, which
// panics before a Result is returned; callers may still test for it.
const Unassigned = -1

// Point is a location in d-dimensional space (d ≥ 1) used by SolvePoints.
type Point []float64

// Pair is one matched (Source, Target) edge of an assignment.
type Pair struct {
	Source int
	Target int
}

// Result holds the outcome of a solve.
type Result struct {
	// Assignment[s] is the target matched to source s, or Unassigned.
	// For a valid n×n input it is a permutation of {0..n-1}.
	Assignment []int

	// Cost is the total cost of Assignment under the input matrix.
	Cost float64

	// SourceLabels and TargetLabels are the final dual labels, expressed in the
	// frame of the input matrix: for every s, t
	//   SourceLabels[s] + TargetLabels[t] <= cost[s][t]
	// with equality on matched pairs, so their sum equals Cost.
	SourceLabels []float64
	TargetLabels []float64
}

// Target reports the target matched to source s. ok is false when s is out of
// range or unmatched.
func (r Result) Target(s int) (target int, ok bool) {
	if s < 0 || s >= len(r.Assignment) {
		return Unassigned, false
	}
	target = r.Assignment[s]
	if target == Unassigned {
		return Unassigned, false
	}

	return target, true
}

// Pairs lists matched pairs in ascending source order, skipping unmatched sources.
func (r Result) Pairs() []Pair {
	out := make([]Pair, 0, len(r.Assignment))
	var s, t int
	for s, t = range r.Assignment {
		if t != Unassigned {
			out = append(out, Pair{Source: s, Target: t})
		}
	}

	return out
}
