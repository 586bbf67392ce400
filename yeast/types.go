// SPDX-License-Identifier: MIT

package yeast

import (
	"fmt"
	"strings"
)

// Type is a yeast variety from the catalog. The zero value is not a valid
// type, so an unset field never passes for IDY.
type Type int

const (
	// IDY is Instant Dry Yeast, the baseline of the chart (factor 1.0).
	IDY Type = iota + 1

	// ADY is Active Dry Yeast (factor 1.25).
	ADY

	// Fresh is fresh compressed (cake) yeast (factor 3.0).
	Fresh
)

// catalogEntry describes one Type.
type catalogEntry struct {
	key    string  // canonical short key
	name   string  // human name
	factor float64 // dose multiplier relative to IDY
}

var catalog = map[Type]catalogEntry{
	IDY:   {key: "IDY", name: "Instant Dry Yeast", factor: 1.0},
	ADY:   {key: "ADY", name: "Active Dry Yeast", factor: 1.25},
	Fresh: {key: "Fresh", name: "Fresh Yeast", factor: 3.0},
}

// aliases maps lower-cased spellings accepted by Parse to a Type.
var aliases = map[string]Type{
	"idy":               IDY,
	"instant":           IDY,
	"instant dry yeast": IDY,
	"ady":               ADY,
	"active":            ADY,
	"active dry yeast":  ADY,
	"fresh":             Fresh,
	"cake":              Fresh,
	"compressed":        Fresh,
	"fresh yeast":       Fresh,
}

// Types lists the catalog in display order.
func Types() []Type {
	return []Type{IDY, ADY, Fresh}
}

// Parse resolves a yeast type name. Matching is case-insensitive and
// ignores surrounding spaces; canonical keys ("IDY", "ADY", "Fresh") and
// common long names are accepted.
func Parse(s string) (Type, error) {
	if t, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrInvalidSelection)
}

// Valid reports whether t is a catalog entry.
func (t Type) Valid() bool {
	_, ok := catalog[t]
	return ok
}

// Factor returns the potency multiplier of t relative to IDY.
func (t Type) Factor() (float64, error) {
	e, ok := catalog[t]
	if !ok {
		return 0, fmt.Errorf("type %d: %w", int(t), ErrInvalidSelection)
	}

	return e.factor, nil
}

// Name returns the human-readable name, e.g. "Active Dry Yeast".
func (t Type) Name() string {
	if e, ok := catalog[t]; ok {
		return e.name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// String returns the canonical key, e.g. "ADY".
func (t Type) String() string {
	if e, ok := catalog[t]; ok {
		return e.key
	}

	return fmt.Sprintf("Type(%d)", int(t))
}
