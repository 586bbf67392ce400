// SPDX-License-Identifier: MIT

package interp_test

import (
	"fmt"

	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/interp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePercentForHours
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Dough at 18.3 °C (a calibration temperature), fermented for 24 hours.
//	The chart row is used unchanged; 24 h sits between 25 h (0.063 %)
//	and 21 h (0.094 %), a quarter of the way along.
func ExamplePercentForHours() {
	c := chart.Default()
	curve, _, err := interp.AtTemperature(c, 18.3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pct, clamped, err := interp.PercentForHours(curve, c.Percents(), 24)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("IDY %.5f%% clamped=%v\n", pct, clamped)
	// Output:
	// IDY 0.07075% clamped=false
}

// ExampleAtTemperature blends the 20.6 °C and 22.8 °C rows.
func ExampleAtTemperature() {
	c := chart.Default()
	curve, _, _ := interp.AtTemperature(c, 21.7)
	fmt.Printf("%.1f %.1f %.1f\n", curve[0], curve[1], curve[2])
	// Output:
	// 92.5 57.5 43.0
}
