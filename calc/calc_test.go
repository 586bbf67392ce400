// SPDX-License-Identifier: MIT

package calc_test

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leaven/calc"
	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/yeast"
)

func baseQuery() calc.Query {
	return calc.Query{TemperatureC: 18.3, TargetHours: 24, FlourGrams: 1000, YeastType: "IDY"}
}

func TestCompute_Example18_3(t *testing.T) {
	res, err := calc.Compute(baseQuery())
	require.NoError(t, err)

	row, _ := chart.Default().Row(1)
	assert.Equal(t, row, res.HoursCurve, "calibration temperature uses the literal row")
	assert.Equal(t, chart.Default().Percents(), res.Percents)
	assert.InDelta(t, 0.07075, res.PercentBaseline, 1e-12)
	assert.Equal(t, res.PercentBaseline, res.PercentAdjusted, "IDY factor is 1")
	assert.InDelta(t, 0.7075, res.Grams, 1e-12)
	assert.Equal(t, 18.3, res.NearestTemperature)
	assert.Equal(t, yeast.IDY, res.YeastType)
	assert.Equal(t, calc.MethodInterpolated, res.Method)
	assert.False(t, res.TemperatureClamped)
	assert.False(t, res.HoursClamped)
}

func TestCompute_TypeAdjustmentIsLinear(t *testing.T) {
	for _, ty := range yeast.Types() {
		q := baseQuery()
		q.TemperatureC = 21.4
		q.YeastType = ty.String()

		res, err := calc.Compute(q)
		require.NoError(t, err)
		f, _ := ty.Factor()
		assert.Equal(t, res.PercentBaseline*f, res.PercentAdjusted, ty.String())
		assert.Equal(t, ty, res.YeastType)
	}
}

func TestCompute_GramsLinearInFlour(t *testing.T) {
	q := baseQuery()
	q.YeastType = "Fresh"
	one, err := calc.Compute(q)
	require.NoError(t, err)

	q.FlourGrams *= 2
	two, err := calc.Compute(q)
	require.NoError(t, err)

	assert.Equal(t, 2*one.Grams, two.Grams)
	assert.Equal(t, one.PercentAdjusted, two.PercentAdjusted)
}

func TestCompute_MonotoneInHours(t *testing.T) {
	c := calc.New()
	prev := math.Inf(1)
	for h := 1.0; h <= 170; h++ {
		q := baseQuery()
		q.TemperatureC = 23.7
		q.TargetHours = h
		res, err := c.Compute(q)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.PercentBaseline, prev, "h=%v", h)
		prev = res.PercentBaseline
	}
}

func TestCompute_Clamping(t *testing.T) {
	percents := chart.Default().Percents()

	q := baseQuery()
	q.TargetHours = 500
	res, err := calc.Compute(q)
	require.NoError(t, err)
	assert.True(t, res.HoursClamped)
	assert.Equal(t, percents[0], res.PercentBaseline)

	q.TargetHours = 1
	res, err = calc.Compute(q)
	require.NoError(t, err)
	assert.True(t, res.HoursClamped)
	assert.Equal(t, percents[len(percents)-1], res.PercentBaseline)

	q = baseQuery()
	q.TemperatureC = 5
	res, err = calc.Compute(q)
	require.NoError(t, err)
	assert.True(t, res.TemperatureClamped)
	assert.Equal(t, 17.8, res.NearestTemperature)
	first, _ := chart.Default().Row(0)
	assert.Equal(t, first, res.HoursCurve)
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		edit func(*calc.Query)
	}{
		{"zero flour", func(q *calc.Query) { q.FlourGrams = 0 }},
		{"negative flour", func(q *calc.Query) { q.FlourGrams = -500 }},
		{"NaN flour", func(q *calc.Query) { q.FlourGrams = math.NaN() }},
		{"zero hours", func(q *calc.Query) { q.TargetHours = 0 }},
		{"negative hours", func(q *calc.Query) { q.TargetHours = -3 }},
		{"infinite hours", func(q *calc.Query) { q.TargetHours = math.Inf(1) }},
		{"NaN temperature", func(q *calc.Query) { q.TemperatureC = math.NaN() }},
		{"infinite temperature", func(q *calc.Query) { q.TemperatureC = math.Inf(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := baseQuery()
			tc.edit(&q)
			_, err := calc.Compute(q)
			assert.ErrorIs(t, err, calc.ErrInvalidInput)
		})
	}
}

func TestCompute_InvalidSelection(t *testing.T) {
	q := baseQuery()
	q.YeastType = "Unknown"
	res, err := calc.Compute(q)
	assert.ErrorIs(t, err, calc.ErrInvalidSelection)
	assert.Zero(t, res.PercentAdjusted, "no silent default to IDY")

	// flour is checked first; both errors are reported before computing
	q.FlourGrams = 0
	_, err = calc.Compute(q)
	assert.ErrorIs(t, err, calc.ErrInvalidInput)
}

func TestCompute_Proportional(t *testing.T) {
	q := baseQuery()
	q.TemperatureC = 18.0 // nearest row is 17.8
	res, err := calc.Compute(q, calc.WithMethod(calc.MethodProportional))
	require.NoError(t, err)

	// middle column of 17.8: 0.094 % ferments in 24 h
	assert.Equal(t, 17.8, res.NearestTemperature)
	assert.InDelta(t, 0.094*24/24, res.PercentBaseline, 1e-12)
	assert.Equal(t, calc.MethodProportional, res.Method)

	q.TargetHours = 48
	res, err = calc.Compute(q, calc.WithMethod(calc.MethodProportional))
	require.NoError(t, err)
	assert.InDelta(t, 0.047, res.PercentBaseline, 1e-12)
}

func TestCompute_CustomChart(t *testing.T) {
	c, err := chart.New([]float64{10, 20}, []float64{0.1, 0.2}, [][]float64{{40, 20}, {20, 10}})
	require.NoError(t, err)

	res, err := calc.Compute(calc.Query{TemperatureC: 15, TargetHours: 22.5, FlourGrams: 500, YeastType: "ADY"}, calc.WithChart(c))
	require.NoError(t, err)
	// curve at 15 °C is {30, 15}; 22.5 h is halfway
	assert.InDeltaSlice(t, []float64{30, 15}, res.HoursCurve, 1e-12)
	assert.InDelta(t, 0.15, res.PercentBaseline, 1e-12)
	assert.InDelta(t, 0.1875, res.PercentAdjusted, 1e-12)
	assert.InDelta(t, 0.9375, res.Grams, 1e-12)
}

func TestCompute_LogsClamping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	q := baseQuery()
	q.TemperatureC = 35
	q.TargetHours = 200
	_, err := calc.Compute(q, calc.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "temperature outside chart")
	assert.Contains(t, out, "target hours outside fermentation curve")
	assert.NotContains(t, out, "yeast computed", "debug lines are filtered at warn level")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { calc.WithChart(nil) })
	assert.Panics(t, func() { calc.WithMethod(calc.Method(9)) })
	assert.NotPanics(t, func() { calc.New(calc.WithLogger(nil)) })
}

func TestParseMethod(t *testing.T) {
	m, err := calc.ParseMethod("Proportional")
	require.NoError(t, err)
	assert.Equal(t, calc.MethodProportional, m)

	m, err = calc.ParseMethod("interpolated")
	require.NoError(t, err)
	assert.Equal(t, calc.MethodInterpolated, m)
	assert.Equal(t, "interpolated", m.String())

	_, err = calc.ParseMethod("cubic")
	assert.ErrorIs(t, err, calc.ErrUnknownMethod)
}

func TestCalculator_Chart(t *testing.T) {
	c, err := chart.New([]float64{10, 20}, []float64{0.1, 0.2}, [][]float64{{40, 20}, {20, 10}})
	require.NoError(t, err)

	assert.Same(t, c, calc.New(calc.WithChart(c)).Chart())
	assert.Equal(t, chart.Default().Temperatures(), calc.New().Chart().Temperatures())
}

func TestCalculator_ZeroValue(t *testing.T) {
	var zero calc.Calculator
	got, err := zero.Compute(baseQuery())
	require.NoError(t, err)

	want, err := calc.New().Compute(baseQuery())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotNil(t, zero.Chart())
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	c := calc.New()
	want, err := c.Compute(baseQuery())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Compute(baseQuery())
			if err != nil {
				errs <- err
				return
			}
			if got.Grams != want.Grams {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
