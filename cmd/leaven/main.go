// SPDX-License-Identifier: MIT

// Command leaven prints how much yeast a dough needs to ferment in a given
// time at a given temperature.
//
// Usage:
//
//	leaven -temp 21 -hours 18 -flour 1500 -yeast ADY
//	leaven -config leaven.yaml -curve
//	LEAVEN_CONFIG=leaven.yaml leaven
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/leaven/calc"
	"github.com/katalvlaran/leaven/chart"
	"github.com/katalvlaran/leaven/config"
)

// ConfigPath is read when neither -config nor LEAVEN_CONFIG is given.
const ConfigPath = "leaven.yaml"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("fatal", "err", err)
		}
		os.Exit(1)
	}
}

// flags are the per-run command-line values.
type flags struct {
	configPath string
	chartPath  string
	method     string
	logLevel   string
	temp       float64
	hours      float64
	flour      float64
	yeastType  string
	curve      bool
	set        map[string]bool // names given explicitly
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("leaven", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default $LEAVEN_CONFIG or "+ConfigPath+")")
	fs.StringVar(&f.chartPath, "chart", "", "YAML fermentation chart (default built-in IDY chart)")
	fs.StringVar(&f.method, "method", "", "interpolated or proportional")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.Float64Var(&f.temp, "temp", 0, "dough temperature in °C")
	fs.Float64Var(&f.hours, "hours", 0, "desired fermentation time in hours")
	fs.Float64Var(&f.flour, "flour", 0, "flour weight in grams")
	fs.StringVar(&f.yeastType, "yeast", "", "yeast type: IDY, ADY or Fresh")
	fs.BoolVar(&f.curve, "curve", false, "also print the fermentation curve at this temperature")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfgPath := ConfigPath
	if p := os.Getenv("LEAVEN_CONFIG"); p != "" {
		cfgPath = p
	}
	if f.configPath != "" {
		cfgPath = f.configPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(&cfg, f)

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	method, err := calc.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	opts := []calc.Option{calc.WithLogger(logger), calc.WithMethod(method)}
	if cfg.ChartPath != "" {
		c, err := chart.LoadYAML(cfg.ChartPath)
		if err != nil {
			return fmt.Errorf("loading chart: %w", err)
		}
		logger.Info("chart loaded", "path", cfg.ChartPath,
			"temperatures", c.NumTemperatures(), "percents", c.NumPercents())
		opts = append(opts, calc.WithChart(c))
	}

	q := calc.Query{
		TemperatureC: cfg.Defaults.TemperatureC,
		TargetHours:  cfg.Defaults.TargetHours,
		FlourGrams:   cfg.Defaults.FlourGrams,
		YeastType:    cfg.Defaults.YeastType,
	}
	warnLimits(logger, cfg.Limits, q)

	res, err := calc.Compute(q, opts...)
	if err != nil {
		return err
	}

	return report(stdout, q, res, f.curve)
}

// applyFlags overlays explicitly given flags onto the loaded config.
func applyFlags(cfg *config.Config, f flags) {
	if f.set["chart"] {
		cfg.ChartPath = f.chartPath
	}
	if f.set["method"] {
		cfg.Method = f.method
	}
	if f.set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	if f.set["temp"] {
		cfg.Defaults.TemperatureC = f.temp
	}
	if f.set["hours"] {
		cfg.Defaults.TargetHours = f.hours
	}
	if f.set["flour"] {
		cfg.Defaults.FlourGrams = f.flour
	}
	if f.set["yeast"] {
		cfg.Defaults.YeastType = f.yeastType
	}
}

func warnLimits(logger *slog.Logger, l config.Limits, q calc.Query) {
	if !l.TemperatureC.Contains(q.TemperatureC) {
		logger.Warn("temperature outside usual range", "temperature_c", q.TemperatureC,
			"min", l.TemperatureC.Min, "max", l.TemperatureC.Max)
	}
	if !l.TargetHours.Contains(q.TargetHours) {
		logger.Warn("fermentation time outside usual range", "target_hours", q.TargetHours,
			"min", l.TargetHours.Min, "max", l.TargetHours.Max)
	}
	if !l.FlourGrams.Contains(q.FlourGrams) {
		logger.Warn("flour weight outside usual range", "flour_g", q.FlourGrams,
			"min", l.FlourGrams.Min, "max", l.FlourGrams.Max)
	}
}
