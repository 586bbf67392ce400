// SPDX-License-Identifier: MIT

package interp_test

import (
	"testing"

	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/interp"
)

// BenchmarkAtTemperature measures the temperature-axis blend on the default chart.
func BenchmarkAtTemperature(b *testing.B) {
	c := chart.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := interp.AtTemperature(c, 21.3); err != nil {
			b.Fatalf("AtTemperature failed: %v", err)
		}
	}
}

// BenchmarkPercentForHours measures the inverse lookup on a fixed curve.
func BenchmarkPercentForHours(b *testing.B) {
	c := chart.Default()
	curve, _, err := interp.AtTemperature(c, 21.3)
	if err != nil {
		b.Fatalf("AtTemperature failed: %v", err)
	}
	percents := c.Percents()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := interp.PercentForHours(curve, percents, 6.5); err != nil {
			b.Fatalf("PercentForHours failed: %v", err)
		}
	}
}
