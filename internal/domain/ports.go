package domain

import "context"

// RecordSource provides the day records of a run, in storage order.
type RecordSource interface {
	LoadDayRecords(ctx context.Context) ([]DayRecord, error)
}

// IngredientStore reads and writes flat ingredient and macro lists.
type IngredientStore interface {
	ReadIngredients(ctx context.Context, path string) ([]Ingredient, error)
	WriteIngredients(ctx context.Context, path string, list []Ingredient) error
	WriteMacros(ctx context.Context, path string, list []Macros) error
}

// Store is everything a run needs from storage. Implementations can be
// CSV files on disk or in-memory.
type Store interface {
	RecordSource
	IngredientStore
}

// NutritionLookup fetches nutrition facts for one ingredient name.
// A nil result with a nil error means the upstream knows nothing about it.
type NutritionLookup interface {
	Lookup(ctx context.Context, name string) (*Macros, error)
}

// LookupFunc adapts a plain function to NutritionLookup.
type LookupFunc func(ctx context.Context, name string) (*Macros, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, name string) (*Macros, error) {
	return f(ctx, name)
}

// ModeSelector asks the user which artifact to produce.
type ModeSelector interface {
	SelectMode(ctx context.Context) (Mode, error)
}
