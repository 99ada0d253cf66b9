// Package units converts kinematic quantities between display units and SI.
//
// Factors are fixed linear multipliers relative to the SI base unit of each
// category (meters, meters/second, meters/second², seconds). The tables are
// package data and never mutated after init.
package units

import (
	"errors"
	"fmt"
	"strings"

	"kinecalc/internal/logging"
)

// ErrUnknownUnit is returned when a unit or category is not in the tables.
var ErrUnknownUnit = errors.New("unknown unit")

// Category groups units that measure the same dimension.
type Category string

const (
	Length       Category = "Length"
	Velocity     Category = "Velocity"
	Acceleration Category = "Acceleration"
	Time         Category = "Time"
)

// Unit is a single display unit and its multiplier into SI.
type Unit struct {
	Symbol string
	ToSI   float64
}

// FromSI returns the multiplier from SI into this unit.
func (u Unit) FromSI() float64 {
	return 1 / u.ToSI
}

// Declaration order matters: the first unit of each category is its SI unit
// and the default selection.
var tables = map[Category][]Unit{
	Length: {
		{Symbol: "m", ToSI: 1.0},
		{Symbol: "ft", ToSI: 0.3048},
		{Symbol: "km", ToSI: 1000.0},
		{Symbol: "mi", ToSI: 1609.34},
	},
	Velocity: {
		{Symbol: "m/s", ToSI: 1.0},
		{Symbol: "ft/s", ToSI: 0.3048},
		{Symbol: "km/h", ToSI: 1000.0 / 3600.0},
		{Symbol: "mph", ToSI: 1609.34 / 3600.0},
	},
	Acceleration: {
		{Symbol: "m/s²", ToSI: 1.0},
		{Symbol: "ft/s²", ToSI: 0.3048},
	},
	Time: {
		{Symbol: "s", ToSI: 1.0},
		{Symbol: "min", ToSI: 60.0},
		{Symbol: "h", ToSI: 3600.0},
	},
}

// ASCII spellings accepted on input.
var aliases = map[string]string{
	"m/s^2":  "m/s²",
	"m/s2":   "m/s²",
	"ft/s^2": "ft/s²",
	"ft/s2":  "ft/s²",
	"kph":    "km/h",
	"sec":    "s",
	"hr":     "h",
}

var categoryOrder = []Category{Length, Velocity, Acceleration, Time}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Units returns the unit symbols of a category in declaration order.
func Units(c Category) []string {
	table := tables[c]
	out := make([]string, 0, len(table))
	for _, u := range table {
		out = append(out, u.Symbol)
	}
	return out
}

// DefaultUnit returns the first unit of the category, or "" if the category is unknown.
func DefaultUnit(c Category) string {
	table := tables[c]
	if len(table) == 0 {
		return ""
	}
	return table[0].Symbol
}

// Normalize maps an ASCII alias to its canonical symbol.
func Normalize(unit string) string {
	unit = strings.TrimSpace(unit)
	if canonical, ok := aliases[strings.ToLower(unit)]; ok {
		return canonical
	}
	return unit
}

// Lookup finds a unit within a category.
func Lookup(unit string, c Category) (Unit, error) {
	table, ok := tables[c]
	if !ok {
		return Unit{}, fmt.Errorf("%w: category %q", ErrUnknownUnit, c)
	}
	symbol := Normalize(unit)
	for _, u := range table {
		if u.Symbol == symbol {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: '%s' for category '%s'", ErrUnknownUnit, unit, c)
}

// CategoryOf returns the category a unit belongs to.
func CategoryOf(unit string) (Category, error) {
	symbol := Normalize(unit)
	for _, c := range categoryOrder {
		for _, u := range tables[c] {
			if u.Symbol == symbol {
				return c, nil
			}
		}
	}
	return "", fmt.Errorf("%w: '%s'", ErrUnknownUnit, unit)
}

// ToSI converts value expressed in unit to the SI base unit of the category.
func ToSI(value float64, unit string, c Category) (float64, error) {
	u, err := Lookup(unit, c)
	if err != nil {
		return 0, err
	}
	return value * u.ToSI, nil
}

// FromSI converts an SI value into unit.
func FromSI(valueSI float64, unit string, c Category) (float64, error) {
	u, err := Lookup(unit, c)
	if err != nil {
		return 0, err
	}
	return valueSI * u.FromSI(), nil
}

// Convert converts value between two units that share a category.
func Convert(value float64, from, to string) (float64, Category, error) {
	c, err := CategoryOf(from)
	if err != nil {
		return 0, "", err
	}
	si, err := ToSI(value, from, c)
	if err != nil {
		return 0, "", err
	}
	out, err := FromSI(si, to, c)
	if err != nil {
		return 0, "", fmt.Errorf("cannot convert %s to %s: %w", Normalize(from), to, err)
	}
	logging.Get(logging.CategoryUnits).Debug("convert %g %s -> %g %s", value, Normalize(from), out, Normalize(to))
	return out, c, nil
}
