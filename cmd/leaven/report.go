// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/leaven/calc"
	"github.com/katalvlaran/leaven/interp"
	"github.com/katalvlaran/leaven/yeast"
)

// report writes the human-readable answer.
func report(w io.Writer, q calc.Query, res calc.Result, curve bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Dough temperature:\t%.1f °C (closest chart row %.1f °C)\n", q.TemperatureC, res.NearestTemperature)
	fmt.Fprintf(tw, "Fermentation time:\t%g h\n", q.TargetHours)
	fmt.Fprintf(tw, "Method:\t%s\n", res.Method)
	fmt.Fprintf(tw, "IDY needed:\t%.4f %% baker's percentage\n", res.PercentBaseline)
	if res.YeastType != yeast.IDY {
		fmt.Fprintf(tw, "%s needed:\t%.4f %% baker's percentage\n", res.YeastType.Name(), res.PercentAdjusted)
	}
	fmt.Fprintf(tw, "For %g g flour:\t%.2f g %s\n", q.FlourGrams, res.Grams, res.YeastType)
	if res.TemperatureClamped {
		fmt.Fprintf(tw, "Note:\ttemperature is outside the chart; the nearest edge row was used\n")
	}
	if res.HoursClamped {
		fmt.Fprintf(tw, "Note:\ttarget time is outside what the chart covers at this temperature\n")
	}
	if curve {
		back, _, err := interp.HoursForPercent(res.HoursCurve, res.Percents, res.PercentBaseline)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "Curve check:\t%.4f %% IDY ferments in %.1f h\n", res.PercentBaseline, back)
		fmt.Fprintf(tw, "\nIDY %%\thours\n")
		for j, p := range res.Percents {
			fmt.Fprintf(tw, "%.3f\t%.1f\n", p, res.HoursCurve[j])
		}
	}

	return tw.Flush()
}
