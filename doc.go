// Package leaven estimates how much yeast a dough needs to ferment for a
// chosen time at a chosen temperature, from an empirical fermentation chart.
//
// 🚀 What is leaven?
//
//	A small, pure-Go calculator built around a two-dimensional
//	interpolation engine:
//		• Reference chart: hours-to-ferment by temperature × yeast %
//		• Temperature axis: linear blend of the two bracketing chart rows
//		• Time axis: inverse lookup of the yeast % that hits the target time
//		• Yeast types: IDY, ADY and fresh yeast potency factors
//		• Grams: baker's percentage → grams for a given flour weight
//
// Under the hood, everything is organized in small packages:
//
//	matrix/ — dense row-major matrix, validators, row interpolation kernel
//	chart/  — the validated, immutable reference table (+ YAML loading)
//	interp/ — AtTemperature, PercentForHours, HoursForPercent
//	yeast/  — yeast-type catalog, Adjust, Grams
//	calc/   — Compute: the whole pipeline behind one call
//	config/ — YAML configuration for the command line
//	cmd/leaven — the command-line front end
//
// Quick example:
//
//	res, err := calc.Compute(calc.Query{
//		TemperatureC: 18.3, TargetHours: 24, FlourGrams: 1000, YeastType: "IDY",
//	})
//	// res.PercentBaseline ≈ 0.0708 %, res.Grams ≈ 0.71 g
//
//	go install github.com/katalvlaran/leaven/cmd/leaven@latest
package leaven
