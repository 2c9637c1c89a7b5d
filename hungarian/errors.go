// SPDX-License-Identifier: MIT
// Package hungarian: sentinel error set.
// Public entry points return these sentinels, wrapped once with a call-site
// tag; callers match them via errors.Is. When the failure was detected by a
// matrix validator, the matrix sentinel is joined in as well, so both
// errors.Is(err, ErrInvalidShape) and errors.Is(err, matrix.ErrDimensionMismatch)
// hold.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> shape -> nil cost func -> non-finite cost -> cost spread overflow.

package hungarian

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when the cost matrix is not square, a row of
	// a [][]float64 has the wrong length, worker/job counts differ, or points
	// disagree on dimensionality.
	ErrInvalidShape = errors.New("hungarian: cost matrix must be square")

	// ErrInvalidCost is returned when any cost (or point coordinate) is NaN or
	// ±Inf, or when max(cost)-min(cost) overflows float64.
	ErrInvalidCost = errors.New("hungarian: cost must be finite")

	// ErrNilMatrix indicates that a nil cost matrix was passed to an adapter.
	ErrNilMatrix = errors.New("hungarian: cost matrix is nil")

	// ErrNilCostFunc indicates that SolveWorkers was called with a nil cost function.
	ErrNilCostFunc = errors.New("hungarian: cost function is nil")

	// ErrInvalidAssignment is returned by AssignmentCost when the assignment is
	// not a permutation of {0..n-1} of the matrix order.
	ErrInvalidAssignment = errors.New("hungarian: assignment is not a permutation")

	// ErrInvariantViolation is never returned. It is the panic value (wrapped)
	// raised when the phase engine detects broken dual feasibility or a
	// corrupted alternating tree, both of which mean a bug in this package.
	ErrInvariantViolation = errors.New("hungarian: internal invariant violated")
)

// hungarianErrorf tags sentinel with the entry point name and, when cause is
// non-nil, joins the lower-level error so both stay visible to errors.Is.
func hungarianErrorf(tag string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}

// invariantf builds the panic value for an internal invariant violation.
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
