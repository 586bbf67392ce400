// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"math"

	"github.com/katalvlaran/leaven/matrix"
)

// minAxisLen is the smallest number of samples per axis that still admits
// linear interpolation.
const minAxisLen = 2

// Chart is an immutable fermentation reference table.
type Chart struct {
	temps    []float64     // calibration temperatures, °C, strictly ascending
	percents []float64     // yeast baker's percentages, strictly ascending
	hours    *matrix.Dense // len(temps) × len(percents), hours-to-ferment
}

// New validates and builds a Chart. hours[i] is the row measured at
// temps[i]; hours[i][j] is the fermentation time for percents[j].
// The inputs are copied.
//
// Errors (all wrap ErrDataIntegrity):
//   - matrix.ErrBadShape          — fewer than 2 temperatures/percentages, ragged rows.
//   - matrix.ErrDimensionMismatch — row count or row length disagrees with an axis.
//   - matrix.ErrNaNInf            — a non-finite value anywhere.
//   - matrix.ErrNotAscending      — an axis is not strictly ascending.
//   - matrix.ErrNonPositive       — a percentage or hours value is zero or negative.
//   - matrix.ErrNotMonotone       — a row increases, or never decreases.
func New(temps, percents []float64, hours [][]float64) (*Chart, error) {
	if len(temps) < minAxisLen {
		return nil, integrityErrorf("temperatures", matrix.ErrBadShape)
	}
	if len(percents) < minAxisLen {
		return nil, integrityErrorf("percents", matrix.ErrBadShape)
	}
	if len(hours) != len(temps) {
		return nil, integrityErrorf(fmt.Sprintf("%d rows for %d temperatures", len(hours), len(temps)), matrix.ErrDimensionMismatch)
	}

	m, err := matrix.NewDenseFromRows(hours)
	if err != nil {
		return nil, integrityErrorf("hours", err)
	}
	if m.Cols() != len(percents) {
		return nil, integrityErrorf(fmt.Sprintf("rows of %d values for %d percents", m.Cols(), len(percents)), matrix.ErrDimensionMismatch)
	}

	if err = matrix.ValidateFiniteVec(temps); err != nil {
		return nil, integrityErrorf("temperatures", err)
	}
	if err = matrix.ValidateFiniteVec(percents); err != nil {
		return nil, integrityErrorf("percents", err)
	}
	if err = matrix.ValidateFinite(m); err != nil {
		return nil, integrityErrorf("hours", err)
	}
	if err = matrix.ValidateStrictlyAscending(temps); err != nil {
		return nil, integrityErrorf("temperatures", err)
	}
	if err = matrix.ValidateStrictlyAscending(percents); err != nil {
		return nil, integrityErrorf("percents", err)
	}
	if err = matrix.ValidatePositiveVec(percents); err != nil {
		return nil, integrityErrorf("percents", err)
	}
	if err = matrix.ValidatePositive(m); err != nil {
		return nil, integrityErrorf("hours", err)
	}
	if err = matrix.ValidateRowsNonIncreasing(m); err != nil {
		return nil, integrityErrorf("hours", err)
	}

	return &Chart{
		temps:    append([]float64(nil), temps...),
		percents: append([]float64(nil), percents...),
		hours:    m,
	}, nil
}

// Temperatures returns a copy of the calibration temperatures (ascending).
func (c *Chart) Temperatures() []float64 {
	return append([]float64(nil), c.temps...)
}

// Percents returns a copy of the yeast percentage axis (ascending).
func (c *Chart) Percents() []float64 {
	return append([]float64(nil), c.percents...)
}

// NumTemperatures returns the number of calibration rows.
func (c *Chart) NumTemperatures() int { return len(c.temps) }

// NumPercents returns the number of percentage columns.
func (c *Chart) NumPercents() int { return len(c.percents) }

// Temperature returns the i-th calibration temperature.
func (c *Chart) Temperature(i int) (float64, error) {
	if i < 0 || i >= len(c.temps) {
		return 0, fmt.Errorf("chart: temperature %d: %w", i, matrix.ErrOutOfRange)
	}

	return c.temps[i], nil
}

// Row returns a copy of the hours row measured at the i-th temperature.
func (c *Chart) Row(i int) ([]float64, error) {
	return c.hours.Row(i)
}

// Blend interpolates elementwise between rows i and k with fraction f.
// f == 0 yields row i exactly.
func (c *Chart) Blend(i, k int, f float64) ([]float64, error) {
	return matrix.LerpRows(c.hours, i, k, f)
}

// Nearest returns the calibration temperature closest to t. Ties go to the
// lower temperature.
func (c *Chart) Nearest(t float64) float64 {
	best := c.temps[0]
	bestDist := math.Abs(t - best)
	for _, ct := range c.temps[1:] {
		if d := math.Abs(t - ct); d < bestDist {
			best, bestDist = ct, d
		}
	}

	return best
}

// String renders the table for debugging.
func (c *Chart) String() string {
	return fmt.Sprintf("temps=%v\npercents=%v\n%s", c.temps, c.percents, c.hours)
}
