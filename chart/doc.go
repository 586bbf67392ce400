// SPDX-License-Identifier: MIT

// Package chart holds the fermentation reference table: hours-to-ferment
// measured at a set of calibration temperatures (°C) for a shared,
// ascending sequence of yeast baker's percentages.
//
// What & Why:
//
//	A Chart is an immutable matrix indexed by (temperature row, percentage
//	column). It is validated once, when it is built, so the interpolation
//	engine can rely on its invariants without re-checking them per query:
//	  • temperatures and percentages strictly ascending and finite
//	  • every row as long as the percentage sequence
//	  • hours positive and non-increasing along each row (more yeast
//	    ferments faster), with at least one strict decrease per row
//
// The built-in chart (Default) carries the 8×15 instant-dry-yeast table
// from 17.8 °C to 30.0 °C. Alternative charts can be read from YAML:
//
//	percents: [0.003, 0.006, 0.010]
//	rows:
//	  - temperature: 18.3
//	    hours: [152, 98, 68]
//	  - temperature: 24.9
//	    hours: [56, 36, 27]
//
// Accessors return copies; a *Chart may be shared freely between goroutines.
package chart
