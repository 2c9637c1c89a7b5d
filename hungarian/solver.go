// SPDX-License-Identifier: MIT

// Package hungarian - solver state and the outer state machine.
//
// Stages (run):
//  1. reduce        - subtract row minima, then column minima, in place.
//  2. initLabels    - sourceLabel = 0, targetLabel[t] = min_s cost[s][t].
//  3. greedyMatch   - match free zero-slack pairs in index order (optional).
//  4. phase loop    - one augmenting path per unmatched source (phase.go).
//  5. result        - copy the matching, restore the input cost frame.
//
// Invariants between stages:
//   - dual feasibility: cost[s][t] - sourceLabel[s] - targetLabel[t] >= 0.
//   - every matched edge has zero slack.
//   - sourceMatch/targetMatch describe the same partial bijection.
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// unmatched is the in-loop sentinel for sourceMatch/targetMatch.
const unmatched = -1

// solver owns every piece of state for a single solve. It is not reusable.
type solver struct {
	n    int
	cost *matrix.Dense // owned buffer, reduced in place
	rows [][]float64   // RowView slices over cost

	rowOffset []float64 // minima subtracted per row by reduce
	colOffset []float64 // minima subtracted per column by reduce

	sourceLabel []float64
	targetLabel []float64
	sourceMatch []int
	targetMatch []int

	opts Options
}

// newSolver wraps an owned, validated (square, finite, non-empty) matrix.
// All slices are sized once here; no growth happens during the solve.
func newSolver(cost *matrix.Dense, opts Options) *solver {
	n := cost.Rows()
	s := &solver{
		n:           n,
		cost:        cost,
		rows:        make([][]float64, n),
		rowOffset:   make([]float64, n),
		colOffset:   make([]float64, n),
		sourceLabel: make([]float64, n),
		targetLabel: make([]float64, n),
		sourceMatch: make([]int, n),
		targetMatch: make([]int, n),
		opts:        opts,
	}
	var i int
	for i = 0; i < n; i++ {
		s.rows[i], _ = cost.RowView(i) // in range by construction
		s.sourceMatch[i] = unmatched
		s.targetMatch[i] = unmatched
	}

	return s
}

// run drives the state machine to completion.
//
// Errors: only those returned by user hooks (wrapped).
// Panics: ErrInvariantViolation when more than n phases are needed.
// Complexity: O(n³) time, O(n²) space (the owned matrix).
func (s *solver) run() (Result, error) {
	log := s.opts.Logger.WithValues("n", s.n)
	s.reduce()
	s.initLabels()
	if s.opts.GreedyBootstrap {
		log.V(1).Info("greedy bootstrap", "matched", s.greedyMatch())
	}

	var (
		p       = newPhase(s.n)
		phases  int
		root    int
		target  int
		pathLen int
		err     error
	)
	for root = s.nextUnmatched(0); root != unmatched; root = s.nextUnmatched(root) {
		phases++
		if phases > s.n {
			panic(invariantf("phase %d exceeds order %d", phases, s.n))
		}
		if s.opts.OnPhase != nil {
			if err = s.opts.OnPhase(root); err != nil {
				return Result{}, fmt.Errorf("hungarian: OnPhase(root=%d): %w", root, err)
			}
		}

		s.initializePhase(p, root)
		target, pathLen = s.executePhase(p)
		log.V(1).Info("augmented", "root", root, "target", target, "pathLen", pathLen)

		if s.opts.OnAugment != nil {
			if err = s.opts.OnAugment(root, target, pathLen); err != nil {
				return Result{}, fmt.Errorf("hungarian: OnAugment(root=%d): %w", root, err)
			}
		}
	}

	res := s.result()
	log.V(1).Info("solved", "phases", phases, "cost", res.Cost)

	return res, nil
}

// reduce subtracts every row's minimum, then every column's minimum of the
// row-reduced matrix. Afterwards all entries are >= 0 and each row and column
// holds at least one zero.
func (s *solver) reduce() {
	var (
		i, j int
		row  []float64
		m    float64
	)
	for i, row = range s.rows {
		m = math.Inf(1)
		for j = range row {
			if row[j] < m {
				m = row[j]
			}
		}
		for j = range row {
			row[j] -= m
		}
		s.rowOffset[i] = m
	}

	for j = 0; j < s.n; j++ {
		m = math.Inf(1)
		for i = 0; i < s.n; i++ {
			if s.rows[i][j] < m {
				m = s.rows[i][j]
			}
		}
		for i = 0; i < s.n; i++ {
			s.rows[i][j] -= m
		}
		s.colOffset[j] = m
	}
}

// initLabels builds the initial feasible labeling: sourceLabel[s] = 0 and
// targetLabel[t] = min over s of cost[s][t].
func (s *solver) initLabels() {
	var i, j int
	for j = 0; j < s.n; j++ {
		s.targetLabel[j] = math.Inf(1)
	}
	for i = 0; i < s.n; i++ {
		s.sourceLabel[i] = 0
		for j = 0; j < s.n; j++ {
			if s.rows[i][j] < s.targetLabel[j] {
				s.targetLabel[j] = s.rows[i][j]
			}
		}
	}
}

// greedyMatch scans (s, t) in ascending order and matches any pair where both
// sides are free and the edge has zero slack. It returns the number of pairs matched.
func (s *solver) greedyMatch() int {
	var src, t, k int
	for src = 0; src < s.n; src++ {
		for t = 0; t < s.n; t++ {
			if s.targetMatch[t] == unmatched && s.slack(src, t) == 0 {
				s.match(src, t)
				k++
				break
			}
		}
	}

	return k
}

// nextUnmatched returns the lowest unmatched source index >= from, or unmatched.
// Augmentation never frees a source, so scanning forward from the last root
// visits every free source exactly once.
func (s *solver) nextUnmatched(from int) int {
	var src int
	for src = from; src < s.n; src++ {
		if s.sourceMatch[src] == unmatched {
			return src
		}
	}

	return unmatched
}

// slack is cost[src][t] - sourceLabel[src] - targetLabel[t] on the reduced matrix.
func (s *solver) slack(src, t int) float64 {
	return s.rows[src][t] - s.sourceLabel[src] - s.targetLabel[t]
}

// match records (src, t) on both sides of the matching.
func (s *solver) match(src, t int) {
	s.sourceMatch[src] = t
	s.targetMatch[t] = src
}

// result extracts the assignment and maps labels and cost back into the
// frame of the input matrix using the offsets recorded by reduce.
func (s *solver) result() Result {
	res := Result{
		Assignment:   make([]int, s.n),
		SourceLabels: make([]float64, s.n),
		TargetLabels: make([]float64, s.n),
	}
	var src, t int
	for src = 0; src < s.n; src++ {
		t = s.sourceMatch[src]
		if t < 0 || t >= s.n {
			res.Assignment[src] = Unassigned
		} else {
			res.Assignment[src] = t
			res.Cost += s.rows[src][t] + s.rowOffset[src] + s.colOffset[t]
		}
		res.SourceLabels[src] = s.rowOffset[src] + s.sourceLabel[src]
	}
	for t = 0; t < s.n; t++ {
		res.TargetLabels[t] = s.colOffset[t] + s.targetLabel[t]
	}

	return res
}
