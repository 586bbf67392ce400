// SPDX-License-Identifier: MIT

// Package interp is the interpolation engine behind the yeast calculator.
//
// 🚀 Two axes, two lookups:
//
//  1. Temperature axis (AtTemperature): blend the two chart rows that
//     bracket the dough temperature into one fermentation curve,
//     hours-to-ferment per calibration percentage.
//  2. Time axis (PercentForHours): walk that curve, which falls as the
//     percentage rises, and solve for the percentage that ferments in
//     the target number of hours.
//
// Both lookups are piecewise linear and clamp at the ends of the chart:
// a temperature below the coldest row uses that row unchanged, a target
// longer than the weakest dose allows returns the weakest dose, and so on.
// Each call reports whether it clamped so callers can warn about it.
//
// ⚙️ Usage:
//
//	c := chart.Default()
//	curve, _, err := interp.AtTemperature(c, 21.0)
//	pct, _, err := interp.PercentForHours(curve, c.Percents(), 24)
//
// Complexity: O(T + P) per query for T temperatures and P percentages.
// Functions are pure; nothing here holds state.
package interp
