// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrNilChart indicates a nil *chart.Chart was passed in.
	ErrNilChart = errors.New("interp: chart is nil")

	// ErrEmptyCurve indicates an empty hours curve or percentage axis.
	ErrEmptyCurve = errors.New("interp: empty curve")

	// ErrDimensionMismatch indicates that curve and percentage axis differ in length.
	ErrDimensionMismatch = errors.New("interp: curve and percents differ in length")

	// ErrNaN indicates a NaN query value (temperature, hours or percentage).
	ErrNaN = errors.New("interp: NaN query")
)
