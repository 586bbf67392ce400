// SPDX-License-Identifier: MIT

// Package calc answers the baker's question: how much yeast do I need so
// that this dough, at this temperature, ferments in this many hours?
//
// Compute chains the pieces together:
//
//	chart ──► interp.AtTemperature ──► interp.PercentForHours ──► yeast.Adjust ──► yeast.Grams
//
// and returns the intermediate fermentation curve alongside the answer so a
// presentation layer can show its work. Inputs are validated before any
// computation: non-positive flour or hours fail with ErrInvalidInput and
// unknown yeast types with ErrInvalidSelection.
//
// A Calculator holds only read-only state and may be shared between
// goroutines.
package calc
