// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/leaven/chart"
)

// Bracket locates a query value on an ascending axis.
//
//   - Lo, Hi   — indices of the bracketing samples; Lo == Hi on an exact hit
//     or when clamped.
//   - Fraction — position between Lo and Hi in [0,1); 0 on exact hit or clamp.
//   - Clamped  — true when the query lies strictly outside the axis.
type Bracket struct {
	Lo, Hi   int
	Fraction float64
	Clamped  bool
}

// Locate finds the Bracket of x on the strictly ascending axis xs.
// The lower sample is chosen so that xs[Lo] <= x < xs[Hi]; an exact match
// with a sample always yields Lo == Hi and Fraction 0.
// xs must be non-empty; x must not be NaN.
func Locate(xs []float64, x float64) Bracket {
	last := len(xs) - 1
	if x <= xs[0] {
		return Bracket{Lo: 0, Hi: 0, Clamped: x < xs[0]}
	}
	if x >= xs[last] {
		return Bracket{Lo: last, Hi: last, Clamped: x > xs[last]}
	}

	// smallest i with xs[i] >= x; 0 < i <= last here
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return Bracket{Lo: i, Hi: i}
	}

	return Bracket{
		Lo:       i - 1,
		Hi:       i,
		Fraction: (x - xs[i-1]) / (xs[i] - xs[i-1]),
	}
}

// AtTemperature estimates the fermentation curve at temperature t:
// hours-to-ferment for every percentage column of c.
//
// Algorithm:
//  1. t <= coldest calibration temperature → that row, unchanged.
//  2. t >= warmest calibration temperature → that row, unchanged.
//  3. Otherwise find tᵢ <= t < tᵢ₊₁, f = (t − tᵢ)/(tᵢ₊₁ − tᵢ) and return
//     row(tᵢ) + f·(row(tᵢ₊₁) − row(tᵢ)) elementwise.
//
// A calibration temperature returns its exact row. The returned slice is
// owned by the caller. clamped reports case 1 or 2 with t strictly outside.
//
// Errors: ErrNilChart, ErrNaN.
// Complexity: O(T + P).
func AtTemperature(c *chart.Chart, t float64) (curve []float64, clamped bool, err error) {
	if c == nil {
		return nil, false, ErrNilChart
	}
	if math.IsNaN(t) {
		return nil, false, fmt.Errorf("temperature: %w", ErrNaN)
	}

	b := Locate(c.Temperatures(), t)
	if b.Lo == b.Hi {
		curve, err = c.Row(b.Lo)
	} else {
		curve, err = c.Blend(b.Lo, b.Hi, b.Fraction)
	}
	if err != nil {
		return nil, false, fmt.Errorf("interp: temperature %g: %w", t, err)
	}

	return curve, b.Clamped, nil
}
