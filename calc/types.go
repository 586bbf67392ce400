// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/leaven/yeast"
)

// Method selects how the IDY percentage is derived from the chart.
//
//   - MethodInterpolated — piecewise-linear interpolation along both the
//     temperature and the time axis (default).
//   - MethodProportional — nearest calibration row, middle column as
//     reference, percentage scaled by reference hours / target hours. Kept
//     for comparison with the first published version of the calculator;
//     it ignores the shape of the curve.
type Method int

const (
	// MethodInterpolated blends rows by temperature and inverts the curve.
	MethodInterpolated Method = iota

	// MethodProportional scales the middle calibration point of the nearest row.
	MethodProportional
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodInterpolated:
		return "interpolated"
	case MethodProportional:
		return "proportional"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves a method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interpolated", "interpolate", "linear":
		return MethodInterpolated, nil
	case "proportional", "legacy":
		return MethodProportional, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Query is one yeast calculation request.
type Query struct {
	TemperatureC float64 // dough temperature, °C; clamped to the chart range
	TargetHours  float64 // desired fermentation time, > 0
	FlourGrams   float64 // flour mass, > 0
	YeastType    string  // catalog key, see yeast.Parse
}

// Result is the outcome of Compute.
//
// HoursCurve[j] is the estimated hours-to-ferment at Percents[j] for the
// query temperature. PercentBaseline is the IDY baker's percentage,
// PercentAdjusted the same dose for YeastType, Grams the mass for the
// queried flour.
type Result struct {
	HoursCurve      []float64
	Percents        []float64
	PercentBaseline float64
	PercentAdjusted float64
	Grams           float64

	YeastType          yeast.Type
	Method             Method
	NearestTemperature float64 // closest calibration temperature
	TemperatureClamped bool    // query temperature outside the chart
	HoursClamped       bool    // target outside the curve; percentage pinned to an end
}
