// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/leaven/matrix"
)

// PercentForHours inverts a fermentation curve: given hours-to-ferment per
// ascending percentage (so hours are non-increasing), return the
// percentage that ferments in h hours.
//
// Algorithm:
//  1. h >= curve[0]    → percents[0]    (no dose ferments slower than the weakest).
//  2. h <= curve[last] → percents[last] (no dose ferments faster than the strongest).
//  3. Otherwise take the first k with curve[k] <= h <= curve[k−1],
//     g = (curve[k−1] − h)/(curve[k−1] − curve[k]) and return
//     percents[k−1] + g·(percents[k] − percents[k−1]).
//     A flat segment (curve[k−1] == curve[k]) returns percents[k−1].
//
// The curve must be non-increasing, which chart.New guarantees for every
// row and therefore for every blend of two rows. Since curve[0] > h >
// curve[last] once the clamps are past, some segment always brackets h;
// on a curve that rises somewhere that segment is not unique and the
// result is meaningless, so such tables are rejected when charts are built.
//
// clamped reports case 1 or 2 with h strictly outside the curve's range.
//
// Errors: ErrEmptyCurve, ErrDimensionMismatch, ErrNaN, matrix.ErrNaNInf.
// Complexity: O(P).
func PercentForHours(curve, percents []float64, h float64) (pct float64, clamped bool, err error) {
	if err = checkCurve(curve, percents); err != nil {
		return 0, false, err
	}
	if math.IsNaN(h) {
		return 0, false, fmt.Errorf("hours: %w", ErrNaN)
	}

	last := len(curve) - 1
	if h >= curve[0] {
		return percents[0], h > curve[0], nil
	}
	if h <= curve[last] {
		return percents[last], h < curve[last], nil
	}

	var g float64
	for k := 1; ; k++ {
		if curve[k] <= h && h <= curve[k-1] {
			if curve[k-1] == curve[k] {
				return percents[k-1], false, nil
			}
			g = (curve[k-1] - h) / (curve[k-1] - curve[k])

			return percents[k-1] + g*(percents[k]-percents[k-1]), false, nil
		}
	}
}

// HoursForPercent reads the curve forward: the hours-to-ferment at
// percentage p, linear between calibration percentages and clamped to the
// end values outside them. It is the counterpart of PercentForHours on
// the strictly decreasing parts of the curve.
//
// Errors: ErrEmptyCurve, ErrDimensionMismatch, ErrNaN, matrix.ErrNaNInf.
// Complexity: O(log P).
func HoursForPercent(curve, percents []float64, p float64) (hours float64, clamped bool, err error) {
	if err = checkCurve(curve, percents); err != nil {
		return 0, false, err
	}
	if math.IsNaN(p) {
		return 0, false, fmt.Errorf("percent: %w", ErrNaN)
	}

	b := Locate(percents, p)
	if b.Lo == b.Hi {
		return curve[b.Lo], b.Clamped, nil
	}

	return curve[b.Lo] + b.Fraction*(curve[b.Hi]-curve[b.Lo]), false, nil
}

// checkCurve validates the shared preconditions of the time-axis lookups.
func checkCurve(curve, percents []float64) error {
	if len(curve) == 0 || len(percents) == 0 {
		return ErrEmptyCurve
	}
	if len(curve) != len(percents) {
		return fmt.Errorf("%d hours for %d percents: %w", len(curve), len(percents), ErrDimensionMismatch)
	}
	if err := matrix.ValidateFiniteVec(curve); err != nil {
		return fmt.Errorf("interp: curve: %w", err)
	}

	return nil
}
