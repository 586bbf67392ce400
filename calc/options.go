// SPDX-License-Identifier: MIT

package calc

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/leaven/chart"
)

const (
	panicNilChart      = "calc: WithChart: chart must not be nil"
	panicUnknownMethod = "calc: WithMethod: unknown method"
)

// Option configures a Calculator. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	chart  *chart.Chart
	logger *slog.Logger
	method Method
}

func defaultOptions() options {
	return options{
		chart:  chart.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		method: MethodInterpolated,
	}
}

// WithChart replaces the built-in chart.
func WithChart(c *chart.Chart) Option {
	if c == nil {
		panic(panicNilChart)
	}

	return func(o *options) { o.chart = c }
}

// WithLogger sets the logger for clamping warnings and debug traces.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMethod selects how the percentage is derived; see Method.
func WithMethod(m Method) Option {
	if m != MethodInterpolated && m != MethodProportional {
		panic(panicUnknownMethod)
	}

	return func(o *options) { o.method = m }
}
