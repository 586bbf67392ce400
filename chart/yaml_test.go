// SPDX-License-Identifier: MIT

package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/matrix"
)

const smallChart = `
percents: [0.01, 0.05, 0.1]
rows:
  - temperature: 25
    hours: [20, 8, 4]
  - temperature: 15
    hours: [60, 30, 12]
`

func TestParseYAML_SortsRows(t *testing.T) {
	c, err := chart.ParseYAML([]byte(smallChart))
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 25}, c.Temperatures())

	row, err := c.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 30, 12}, row)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := chart.ParseYAML([]byte("percents: [oops"))
	assert.Error(t, err)

	dup := `
percents: [0.01, 0.05]
rows:
  - {temperature: 20, hours: [10, 5]}
  - {temperature: 20, hours: [9, 4]}
`
	_, err = chart.ParseYAML([]byte(dup))
	assert.ErrorIs(t, err, chart.ErrDataIntegrity)
	assert.ErrorIs(t, err, matrix.ErrNotAscending)
}

func TestYAML_DefaultRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(chart.Default())
	require.NoError(t, err)

	back, err := chart.ParseYAML(out)
	require.NoError(t, err)
	assert.Equal(t, chart.Default().Temperatures(), back.Temperatures())
	assert.Equal(t, chart.Default().Percents(), back.Percents())
	for i := 0; i < back.NumTemperatures(); i++ {
		want, _ := chart.Default().Row(i)
		got, _ := back.Row(i)
		assert.Equal(t, want, got, "row %d", i)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallChart), 0o600))

	c, err := chart.LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumPercents())

	_, err = chart.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
