// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the checks a fermentation chart must pass.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them via errors.Is and still see where the check failed.
//
// Determinism & Performance:
//  - All checks are pure, allocate nothing, and scan in fixed i→j order.

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
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects NaN and ±Inf entries.
// Time: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ValidateFiniteVec: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateFinite rejects a matrix holding any NaN or ±Inf entry.
// Time: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidatePositiveVec rejects zero or negative entries.
// Time: O(n).
func ValidatePositiveVec(x []float64) error {
	for i, v := range x {
		if !(v > 0) {
			return fmt.Errorf("ValidatePositiveVec: index %d (%g): %w", i, v, ErrNonPositive)
		}
	}

	return nil
}

// ValidatePositive rejects a matrix holding any zero or negative entry.
// Time: O(r*c).
func ValidatePositive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidatePositive", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, _ := m.At(i, j); !(v > 0) {
				return fmt.Errorf("ValidatePositive: (%d,%d) = %g: %w", i, j, v, ErrNonPositive)
			}
		}
	}

	return nil
}

// ValidateStrictlyAscending checks x[i-1] < x[i] for every i.
// An empty or single-element vector is trivially ascending.
// Time: O(n).
func ValidateStrictlyAscending(x []float64) error {
	for i := 1; i < len(x); i++ {
		if !(x[i-1] < x[i]) {
			return fmt.Errorf("ValidateStrictlyAscending: index %d (%g after %g): %w", i, x[i], x[i-1], ErrNotAscending)
		}
	}

	return nil
}

// ValidateRowsNonIncreasing checks that every row of m is monotonically
// non-increasing left to right and strictly decreases at least once, so
// that an inverse lookup along the row is well defined.
// Time: O(r*c).
func ValidateRowsNonIncreasing(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowsNonIncreasing", err)
	}
	var (
		i, j       int
		prev, curr float64
		decreased  bool
	)
	for i = 0; i < m.Rows(); i++ {
		decreased = false
		prev, _ = m.At(i, 0)
		for j = 1; j < m.Cols(); j++ {
			curr, _ = m.At(i, j)
			if curr > prev {
				return fmt.Errorf("ValidateRowsNonIncreasing: row %d col %d (%g after %g): %w", i, j, curr, prev, ErrNotMonotone)
			}
			if curr < prev {
				decreased = true
			}
			prev = curr
		}
		if !decreased {
			return fmt.Errorf("ValidateRowsNonIncreasing: row %d is flat: %w", i, ErrNotMonotone)
		}
	}

	return nil
}
