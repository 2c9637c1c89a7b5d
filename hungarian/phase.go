// SPDX-License-Identifier: MIT

// Package hungarian - the phase engine: one augmenting-path search per call.
//
// A phase is rooted at an unmatched source r and grows an alternating tree:
// committed sources are reachable from r along zero-slack edges that alternate
// unmatched/matched, and parent[t] names the committed source through which
// target t joined the tree. For every target outside the tree, minSlack[t] and
// minSlackOwner[t] track the cheapest edge into it from a committed source.
//
// Each iteration of executePhase brings one more target into the tree, so a
// phase ends after at most n iterations and the whole solve runs in O(n³).
package hungarian

import "math"

// unparented marks a target that has not joined the current tree.
const unparented = -1

// phase is the per-root context. It is allocated once per solve and reset by
// initializePhase, so the tree lives in exactly one place.
type phase struct {
	root          int
	committed     []bool    // committedSources
	minSlack      []float64 // valid only for unparented targets
	minSlackOwner []int     // committed source achieving minSlack[t]
	parent        []int     // committed source that brought t into the tree
}

func newPhase(n int) *phase {
	return &phase{
		root:          unmatched,
		committed:     make([]bool, n),
		minSlack:      make([]float64, n),
		minSlackOwner: make([]int, n),
		parent:        make([]int, n),
	}
}

// initializePhase resets p to a tree holding only root r.
func (s *solver) initializePhase(p *phase, r int) {
	var t int
	p.root = r
	for t = range p.committed {
		p.committed[t] = false
	}
	p.committed[r] = true
	for t = 0; t < s.n; t++ {
		p.minSlack[t] = s.slack(r, t)
		p.minSlackOwner[t] = r
		p.parent[t] = unparented
	}
}

// executePhase grows the tree until it reaches a free target, then flips the
// augmenting path. It returns that target and the number of sources re-matched.
//
// Ties on minSlack resolve to the lowest target index (strict <, ascending scan).
// Panics with ErrInvariantViolation if no target outside the tree remains.
func (s *solver) executePhase(p *phase) (target, pathLen int) {
	var (
		t      int
		best   int
		bestSl float64
	)
	for {
		best, bestSl = unparented, math.Inf(1)
		for t = 0; t < s.n; t++ {
			if p.parent[t] == unparented && p.minSlack[t] < bestSl {
				best, bestSl = t, p.minSlack[t]
			}
		}
		if best == unparented {
			panic(invariantf("root %d: no target outside the alternating tree", p.root))
		}

		if bestSl > 0 {
			s.updateLabels(p, bestSl)
		}
		p.parent[best] = p.minSlackOwner[best]

		if s.targetMatch[best] == unmatched {
			return best, s.augment(p, best)
		}
		s.commit(p, s.targetMatch[best])
	}
}

// updateLabels shifts the duals by delta: committed sources go up, tree
// targets go down, and every other target's tracked slack shrinks by delta.
// Edges inside the tree keep their slack; at least one edge leaving the tree
// drops to zero. Feasibility holds because delta is the minimum such slack.
func (s *solver) updateLabels(p *phase, delta float64) {
	var i int
	for i = 0; i < s.n; i++ {
		if p.committed[i] {
			s.sourceLabel[i] += delta
		}
	}
	for i = 0; i < s.n; i++ {
		if p.parent[i] != unparented {
			s.targetLabel[i] -= delta
		} else {
			p.minSlack[i] -= delta
		}
	}
}

// commit adds src to the tree and relaxes minSlack for targets still outside it.
func (s *solver) commit(p *phase, src int) {
	var (
		t  int
		sl float64
	)
	p.committed[src] = true
	for t = 0; t < s.n; t++ {
		if p.parent[t] != unparented {
			continue
		}
		sl = s.slack(src, t)
		if sl < p.minSlack[t] {
			p.minSlack[t] = sl
			p.minSlackOwner[t] = src
		}
	}
}

// augment walks parent pointers from the free target back to the root,
// re-matching each source on the way. The matching grows by exactly one.
func (s *solver) augment(p *phase, target int) int {
	var (
		t       = target
		src     int
		next    int
		pathLen int
	)
	for t != unmatched {
		if pathLen == s.n {
			panic(invariantf("root %d: augmenting path longer than %d", p.root, s.n))
		}
		src = p.parent[t]
		if src == unparented || !p.committed[src] {
			panic(invariantf("root %d: target %d has no committed parent", p.root, t))
		}
		next = s.sourceMatch[src]
		s.match(src, t)
		pathLen++
		t = next
	}
	if s.sourceMatch[p.root] == unmatched {
		panic(invariantf("root %d: augmenting path did not reach the root", p.root))
	}

	return pathLen
}
