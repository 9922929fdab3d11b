// Package domain defines the core types and interfaces for calcprods.
// All other packages depend on domain; domain depends on nothing but decimal.
package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Ingredient is a named quantity in a normalized unit.
type Ingredient struct {
	Name     string
	Quantity decimal.Decimal
	Unit     Unit
	// Blank marks a quantity left empty for a hand count. It is not zero.
	Blank bool
}

// NewIngredient builds an ingredient with its quantity and unit normalized.
func NewIngredient(name string, quantity decimal.Decimal, unit Unit) Ingredient {
	q, u := Normalize(quantity, unit)
	return Ingredient{Name: name, Quantity: q, Unit: u}
}

// NewIngredientFloat is a convenience constructor for literal quantities.
func NewIngredientFloat(name string, quantity float64, unit Unit) Ingredient {
	return NewIngredient(name, decimal.NewFromFloat(quantity), unit)
}

// WithQuantity returns a copy carrying a new (normalized) quantity.
func (i Ingredient) WithQuantity(q decimal.Decimal) Ingredient {
	return NewIngredient(i.Name, q, i.Unit)
}

// Blanked returns a copy whose quantity is left to be filled in by hand.
func (i Ingredient) Blanked() Ingredient {
	return Ingredient{Name: i.Name, Quantity: decimal.Zero, Unit: i.Unit, Blank: true}
}

// SameKind reports whether both ingredients name the same thing.
func (i Ingredient) SameKind(o Ingredient) bool {
	return i.Name == o.Name
}

// Less orders ingredients by name, then quantity, then unit.
func (i Ingredient) Less(o Ingredient) bool {
	if i.Name != o.Name {
		return i.Name < o.Name
	}
	if c := i.Quantity.Cmp(o.Quantity); c != 0 {
		return c < 0
	}
	return i.Unit < o.Unit
}

// QuantityString renders the quantity the way it is written to CSV.
// Blank quantities render as an empty string.
func (i Ingredient) QuantityString() string {
	if i.Blank {
		return ""
	}
	return i.Quantity.String()
}

// String returns "name quantity unit", mostly for logs and test output.
func (i Ingredient) String() string {
	q := i.QuantityString()
	if q == "" {
		q = "_"
	}
	return i.Name + " " + q + " " + string(i.Unit)
}

// SortIngredients sorts in place using Less.
func SortIngredients(list []Ingredient) {
	sort.SliceStable(list, func(a, b int) bool { return list[a].Less(list[b]) })
}

// Names returns the ingredient names in list order.
func Names(list []Ingredient) []string {
	out := make([]string, len(list))
	for i, ing := range list {
		out[i] = ing.Name
	}
	return out
}
