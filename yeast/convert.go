// SPDX-License-Identifier: MIT

package yeast

import (
	"fmt"
	"math"
)

// Adjust scales an IDY baker's percentage to yeast type t:
// adjusted = idyPercent × factor(t).
//
// Errors: ErrInvalidSelection for a type outside the catalog.
func Adjust(idyPercent float64, t Type) (float64, error) {
	f, err := t.Factor()
	if err != nil {
		return 0, err
	}

	return idyPercent * f, nil
}

// Grams converts a baker's percentage into grams of yeast for flourGrams of
// flour: grams = percent/100 × flourGrams.
//
// Errors: ErrInvalidInput when flourGrams is not a positive finite number
// or percent is negative or not finite.
func Grams(percent, flourGrams float64) (float64, error) {
	if !(flourGrams > 0) || math.IsInf(flourGrams, 1) {
		return 0, fmt.Errorf("flour mass %g g must be positive: %w", flourGrams, ErrInvalidInput)
	}
	if !(percent >= 0) || math.IsInf(percent, 1) {
		return 0, fmt.Errorf("percent %g must be a non-negative number: %w", percent, ErrInvalidInput)
	}

	return percent / 100 * flourGrams, nil
}
