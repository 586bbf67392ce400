// SPDX-License-Identifier: MIT

package calc

import (
	"errors"

	"github.com/katalvlaran/leaven/yeast"
)

var (
	// ErrInvalidInput is returned for a non-positive or non-finite flour
	// mass or target duration, or a non-finite temperature.
	ErrInvalidInput = yeast.ErrInvalidInput

	// ErrInvalidSelection is returned for a yeast type outside the catalog.
	ErrInvalidSelection = yeast.ErrInvalidSelection

	// ErrUnknownMethod is returned by ParseMethod for an unrecognised name.
	ErrUnknownMethod = errors.New("calc: unknown method")
)
