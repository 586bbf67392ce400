// SPDX-License-Identifier: MIT

package yeast

import "errors"

var (
	// ErrInvalidSelection indicates a yeast type that is not in the catalog.
	ErrInvalidSelection = errors.New("yeast: unknown yeast type")

	// ErrInvalidInput indicates a non-positive or non-finite quantity
	// (flour mass, percentage).
	ErrInvalidInput = errors.New("yeast: invalid input")
)
