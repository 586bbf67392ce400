// SPDX-License-Identifier: MIT

// Package yeast converts a required instant-dry-yeast (IDY) baker's
// percentage into the amount of another yeast type, and into grams.
//
// The catalog is a closed set of Type values with fixed potency factors
// relative to IDY:
//
//	IDY   Instant Dry Yeast        × 1.00
//	ADY   Active Dry Yeast         × 1.25
//	Fresh fresh (compressed) yeast × 3.00
//
// Weaker yeast needs a larger dose, so factors are multipliers on the IDY
// percentage. Unknown type names fail with ErrInvalidSelection; nothing
// ever silently falls back to IDY.
package yeast
