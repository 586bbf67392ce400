// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise linear interpolation between two rows of a matrix, the one
//     kernel the temperature axis of the interpolation engine needs.
//
// Determinism:
//   - Fixed loop order; a fresh output slice per call. f == 0 returns the
//     first row bit-for-bit, since a + 0*(b-a) == a for finite a and b.

package matrix

// LerpVec computes out[j] = a[j] + f*(b[j]-a[j]).
// Returns ErrDimensionMismatch when len(a) != len(b).
// Time: O(n). Space: O(n).
func LerpVec(a, b []float64, f float64) ([]float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return nil, matrixErrorf("LerpVec", err)
	}
	out := make([]float64, len(a))
	for j := range a {
		out[j] = a[j] + f*(b[j]-a[j])
	}

	return out, nil
}

// LerpRows interpolates elementwise between rows i and k of m with
// fraction f. f is not clamped; callers pass f ∈ [0,1].
// Returns ErrOutOfRange for invalid row indices.
// Time: O(c). Space: O(c).
func LerpRows(m *Dense, i, k int, f float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("LerpRows", err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf("LerpRows", i, k, ErrOutOfRange)
	}
	if k < 0 || k >= m.r {
		return nil, denseErrorf("LerpRows", i, k, ErrOutOfRange)
	}

	return LerpVec(m.rowView(i), m.rowView(k), f)
}
