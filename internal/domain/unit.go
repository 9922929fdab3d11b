package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit is a unit of measurement as written in the day files.
// More units and conversions at
// https://en.wikipedia.org/wiki/Cooking_weights_and_measures
type Unit string

const (
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "ml"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitCup        Unit = "cup"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitPiece      Unit = "pcs"
)

// ValidUnits is the closed set of accepted unit strings.
var ValidUnits = map[Unit]bool{
	UnitLiter:      true,
	UnitMilliliter: true,
	UnitGram:       true,
	UnitKilogram:   true,
	UnitCup:        true,
	UnitTeaspoon:   true,
	UnitTablespoon: true,
	UnitPiece:      true,
}

// Conversion factors applied by Normalize.
var (
	gramsPerKilo   = decimal.NewFromInt(1000)
	millisPerLiter = decimal.NewFromInt(1000)
	millisPerTbsp  = decimal.RequireFromString("14.7868")
)

// ParseUnit converts the textual form of a unit. Matching is exact.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !ValidUnits[u] {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// String returns the unit as written in CSV files.
func (u Unit) String() string { return string(u) }

// Normalize converts a quantity to the unit used internally:
// g -> kg, L -> ml, tbsp -> ml. Every other unit passes through,
// so Normalize is idempotent.
func Normalize(q decimal.Decimal, u Unit) (decimal.Decimal, Unit) {
	switch u {
	case UnitGram:
		return q.Div(gramsPerKilo), UnitKilogram
	case UnitLiter:
		return q.Mul(millisPerLiter), UnitMilliliter
	case UnitTablespoon:
		return q.Mul(millisPerTbsp), UnitMilliliter
	default:
		return q, u
	}
}
