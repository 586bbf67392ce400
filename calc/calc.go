// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/interp"
	"github.com/katalvlaran/leaven/yeast"
)

// Calculator computes yeast quantities against one chart. The zero value
// behaves like New() with no options.
type Calculator struct {
	chart  *chart.Chart
	logger *slog.Logger
	method Method
}

// New builds a Calculator; without options it uses chart.Default,
// MethodInterpolated and a discarding logger.
func New(opts ...Option) *Calculator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Calculator{chart: o.chart, logger: o.logger, method: o.method}
}

// Chart returns the chart the calculator reads.
func (c *Calculator) Chart() *chart.Chart { return c.withDefaults().chart }

// withDefaults fills the fields a zero Calculator leaves unset. It returns
// a copy so concurrent Compute calls never write to c.
func (c *Calculator) withDefaults() *Calculator {
	if c.chart != nil && c.logger != nil {
		return c
	}
	d := defaultOptions()
	r := *c
	if r.chart == nil {
		r.chart = d.chart
	}
	if r.logger == nil {
		r.logger = d.logger
	}

	return &r
}

// Compute is a one-shot New(opts...).Compute(q).
func Compute(q Query, opts ...Option) (Result, error) {
	return New(opts...).Compute(q)
}

// Compute returns the yeast required for q.
//
// Stages:
//  1. Validate: flour and hours positive and finite, temperature finite,
//     yeast type in the catalog.
//  2. Estimate the IDY percentage (see Method).
//  3. Adjust for the yeast type and convert to grams.
//
// Errors: ErrInvalidInput, ErrInvalidSelection.
func (c *Calculator) Compute(q Query) (Result, error) {
	c = c.withDefaults()
	yt, err := validate(q)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Percents:           c.chart.Percents(),
		YeastType:          yt,
		Method:             c.method,
		NearestTemperature: c.chart.Nearest(q.TemperatureC),
	}

	switch c.method {
	case MethodProportional:
		err = c.proportional(q, &res)
	default:
		err = c.interpolated(q, &res)
	}
	if err != nil {
		return Result{}, fmt.Errorf("calc: %w", err)
	}

	if res.PercentAdjusted, err = yeast.Adjust(res.PercentBaseline, yt); err != nil {
		return Result{}, err
	}
	if res.Grams, err = yeast.Grams(res.PercentAdjusted, q.FlourGrams); err != nil {
		return Result{}, err
	}

	if res.TemperatureClamped {
		c.logger.Warn("temperature outside chart, using nearest row",
			"temperature_c", q.TemperatureC, "nearest_c", res.NearestTemperature)
	}
	if res.HoursClamped {
		c.logger.Warn("target hours outside fermentation curve, dose pinned to chart limit",
			"target_hours", q.TargetHours, "percent_idy", res.PercentBaseline)
	}
	c.logger.Debug("yeast computed",
		"method", c.method.String(),
		"temperature_c", q.TemperatureC,
		"target_hours", q.TargetHours,
		"flour_g", q.FlourGrams,
		"yeast", yt.String(),
		"percent_idy", res.PercentBaseline,
		"percent_adjusted", res.PercentAdjusted,
		"grams", res.Grams)

	return res, nil
}

// validate rejects bad queries before any computation.
func validate(q Query) (yeast.Type, error) {
	if !positiveFinite(q.FlourGrams) {
		return 0, fmt.Errorf("flour mass %g g must be positive: %w", q.FlourGrams, ErrInvalidInput)
	}
	if !positiveFinite(q.TargetHours) {
		return 0, fmt.Errorf("target duration %g h must be positive: %w", q.TargetHours, ErrInvalidInput)
	}
	if math.IsNaN(q.TemperatureC) || math.IsInf(q.TemperatureC, 0) {
		return 0, fmt.Errorf("temperature %g °C must be finite: %w", q.TemperatureC, ErrInvalidInput)
	}

	return yeast.Parse(q.YeastType)
}

// interpolated runs the two-axis interpolation.
func (c *Calculator) interpolated(q Query, res *Result) error {
	curve, tClamped, err := interp.AtTemperature(c.chart, q.TemperatureC)
	if err != nil {
		return err
	}
	pct, hClamped, err := interp.PercentForHours(curve, res.Percents, q.TargetHours)
	if err != nil {
		return err
	}

	res.HoursCurve = curve
	res.PercentBaseline = pct
	res.TemperatureClamped = tClamped
	res.HoursClamped = hClamped

	return nil
}

// proportional scales the middle calibration point of the nearest row by
// reference hours / target hours.
func (c *Calculator) proportional(q Query, res *Result) error {
	temps := c.chart.Temperatures()
	b := interp.Locate(temps, q.TemperatureC)
	row := 0
	for i, t := range temps {
		if t == res.NearestTemperature {
			row = i
			break
		}
	}
	curve, err := c.chart.Row(row)
	if err != nil {
		return err
	}
	mid := len(curve) / 2

	res.HoursCurve = curve
	res.PercentBaseline = res.Percents[mid] * curve[mid] / q.TargetHours
	res.TemperatureClamped = b.Clamped

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
