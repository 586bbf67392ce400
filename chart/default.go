// SPDX-License-Identifier: MIT

package chart

// Instant-dry-yeast reference data: hours to ferment at each calibration
// temperature (°C) for each baker's percentage in defaultPercents.
var (
	defaultPercents = []float64{
		0.003, 0.006, 0.010, 0.021, 0.031, 0.042,
		0.063, 0.094, 0.126, 0.168, 0.210, 0.252,
		0.294, 0.336, 0.420,
	}

	defaultTemps = []float64{17.8, 18.3, 19.4, 20.6, 22.8, 24.9, 27.2, 30.0}

	defaultHours = [][]float64{
		{162, 105, 78, 50, 40, 32, 28, 24, 20, 15, 12, 10, 9, 8, 6}, // 17.8
		{152, 98, 68, 47, 37, 31, 25, 21, 18, 14, 12, 9, 8, 8, 6},   // 18.3
		{133, 80, 64, 41, 31, 25, 21, 17, 15, 11, 9, 8, 7, 6, 5},    // 19.4
		{109, 65, 52, 33, 25, 20, 17, 14, 12, 9, 8, 6, 5, 5, 4},     // 20.6
		{76, 50, 34, 21, 18, 14, 12, 10, 9, 7, 6, 5, 4, 4, 3},       // 22.8
		{56, 36, 27, 15, 12, 10, 8, 7, 6, 5, 4, 3, 3, 3, 2},         // 24.9
		{42, 28, 18, 12, 9, 7, 6, 5, 5, 4, 3, 3, 2, 2, 2},           // 27.2
		{32, 19, 14, 10, 7, 5, 5, 4, 4, 3, 3, 2, 2, 2, 2},           // 30.0
	}
)

// defaultChart is built once at package init. The data is compiled in, so
// a validation failure is a programmer error.
var defaultChart = mustNew(defaultTemps, defaultPercents, defaultHours)

// Default returns the built-in instant-dry-yeast chart. The returned value
// is shared and immutable.
func Default() *Chart {
	return defaultChart
}

func mustNew(temps, percents []float64, hours [][]float64) *Chart {
	c, err := New(temps, percents, hours)
	if err != nil {
		panic(err)
	}

	return c
}
