// SPDX-License-Identifier: MIT

// Package matrix provides the small dense float64 matrix used to hold
// fermentation charts, together with the validators and elementwise
// kernels the interpolation engine relies on.
//
// The package provides:
//
//   - Dense: a row-major matrix backed by one flat slice, with bounds-checked
//     At/Set and copy-returning Row accessors.
//   - Validators: shape, finite-value, strict ordering and row monotonicity
//     checks returning package sentinels (see errors.go).
//   - LerpRows / LerpVec: elementwise linear interpolation between two rows.
//
// Matrices here are tiny (a chart is 8×15); every routine favours clarity
// and deterministic loop order over blocking or SIMD tricks.
package matrix
