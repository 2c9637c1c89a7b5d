// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinels wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite scans in row-major order and stops at the first offender.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense stored in the interface is treated as nil too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateFinite reports the first NaN or ±Inf entry of m.
// Assumes m is not nil. *Dense takes the flat Do fast-path.
//
// Errors: ErrNaNInf (tagged with coordinates), ErrOutOfRange if m.At misbehaves.
// Complexity: O(r*c) time, O(1) space.
func ValidateFinite(m Matrix) error {
	var (
		bad    bool
		bi, bj int
	)
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad, bi, bj = true, i, j
				return false
			}
			return true
		})
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
	scan:
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return validatorErrorf("ValidateFinite", err)
				}
				if math.IsNaN(v) || math.IsInf(v, 0) {
					bad, bi, bj = true, i, j
					break scan
				}
			}
		}
	}
	if bad {
		return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", bi, bj), ErrNaNInf)
	}

	return nil
}
