// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// fileRow is one calibration row as written in a YAML chart file.
type fileRow struct {
	Temperature float64   `yaml:"temperature"`
	Hours       []float64 `yaml:"hours,flow"`
}

// fileChart is the on-disk layout of a chart.
type fileChart struct {
	Percents []float64 `yaml:"percents,flow"`
	Rows     []fileRow `yaml:"rows"`
}

// ParseYAML decodes and validates a chart. Rows may appear in any order;
// they are sorted by temperature before validation, so duplicate
// temperatures still fail with ErrDataIntegrity.
func ParseYAML(data []byte) (*Chart, error) {
	var fc fileChart
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("chart: decoding yaml: %w", err)
	}

	rows := append([]fileRow(nil), fc.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Temperature < rows[j].Temperature
	})

	temps := make([]float64, len(rows))
	hours := make([][]float64, len(rows))
	for i, r := range rows {
		temps[i] = r.Temperature
		hours[i] = r.Hours
	}

	return New(temps, fc.Percents, hours)
}

// LoadYAML reads and validates a chart file.
func LoadYAML(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chart: reading %s: %w", path, err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// MarshalYAML implements yaml.Marshaler using the same layout ParseYAML reads.
func (c *Chart) MarshalYAML() (interface{}, error) {
	fc := fileChart{
		Percents: c.Percents(),
		Rows:     make([]fileRow, len(c.temps)),
	}
	for i, t := range c.temps {
		row, err := c.hours.Row(i)
		if err != nil {
			return nil, err
		}
		fc.Rows[i] = fileRow{Temperature: t, Hours: row}
	}

	return fc, nil
}
