// Package engine aggregates day records into stock and order lists.
//
// Everything here is a pure transformation over its inputs; the only state
// an Engine keeps is the processed ingredient list it computes once in New.
package engine

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/calcprods/internal/dayspec"
	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// quantityPlaces is the number of decimals kept on merged and ordered quantities.
const quantityPlaces = 2

// Engine holds the merged ingredient list for one selection of days and people.
type Engine struct {
	days      dayspec.Set
	people    int
	log       *logger.Logger
	processed []domain.Ingredient
}

// New filters the records by days, merges duplicates and keeps the result.
func New(records []domain.DayRecord, days dayspec.Set, people int, log *logger.Logger) *Engine {
	e := &Engine{
		days:   days,
		people: people,
		log:    log,
	}

	filtered := FilterByDays(records, days)
	e.processed = MergeDuplicates(filtered)

	log.Debug("engine: %d records, days %v -> %d ingredients, %d distinct",
		len(records), days.Sorted(), len(filtered), len(e.processed))
	return e
}

// Days returns the selected days in ascending order.
func (e *Engine) Days() []int { return e.days.Sorted() }

// People returns the headcount the order is scaled by.
func (e *Engine) People() int { return e.people }

// Ingredients returns a copy of the merged, day-filtered list.
func (e *Engine) Ingredients() []domain.Ingredient {
	return copyList(e.processed)
}

// IngredientNames returns the distinct ingredient names, sorted.
func (e *Engine) IngredientNames() []string {
	return domain.Names(e.processed)
}

// EmptyStockList returns the processed list with every quantity blank,
// ready to be filled in during a stock count.
func (e *Engine) EmptyStockList() []domain.Ingredient {
	stock := make([]domain.Ingredient, len(e.processed))
	for i, ing := range e.processed {
		stock[i] = ing.Blanked()
	}
	return stock
}

// Order computes what to buy given the on-hand list read from source.
// Required names that find no on-hand partner, or more than one, are
// logged; the result is still exactly what ComputeOrder returns.
func (e *Engine) Order(source string, onHand []domain.Ingredient) ([]domain.Ingredient, error) {
	order, err := ComputeOrder(e.processed, onHand, e.people)
	if err != nil {
		var mm *domain.MismatchError
		if errors.As(err, &mm) {
			mm.Source = source
		}
		return nil, err
	}

	matches := make(map[string]int, len(onHand))
	for _, s := range onHand {
		matches[s.Name]++
	}
	for _, r := range e.processed {
		switch n := matches[r.Name]; {
		case n == 0:
			e.log.Warn("order: %q has no entry in %s and is left out", r.Name, source)
		case n > 1:
			e.log.Warn("order: %q appears %d times in %s", r.Name, n, source)
		}
	}

	e.log.Info("order: %d ingredients for %d people, days %v", len(order), e.people, e.Days())
	return order, nil
}

// FilterByDays flattens the ingredients of every record whose day is
// selected. Record order and in-file order are kept; nothing is merged.
func FilterByDays(records []domain.DayRecord, days dayspec.Set) []domain.Ingredient {
	var out []domain.Ingredient
	for _, rec := range records {
		if !days.Contains(rec.Day) {
			continue
		}
		out = append(out, rec.Ingredients...)
	}
	return out
}

// MergeDuplicates sorts by name and collapses same-named entries into one
// whose quantity is the rounded sum and whose unit is the first entry's.
// Units of same-named entries are assumed compatible. The input is not modified.
func MergeDuplicates(list []domain.Ingredient) []domain.Ingredient {
	sorted := copyList(list)
	domain.SortIngredients(sorted)

	out := make([]domain.Ingredient, 0, len(sorted))
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].SameKind(sorted[i]) {
			j++
		}

		if j-i == 1 {
			out = append(out, sorted[i])
		} else {
			sum := decimal.Zero
			for _, ing := range sorted[i:j] {
				sum = sum.Add(ing.Quantity)
			}
			out = append(out, sorted[i].WithQuantity(sum.Round(quantityPlaces)))
		}
		i = j
	}
	return out
}

// ComputeOrder scales every required quantity by people and subtracts the
// on-hand quantity of the same name, rounding to two decimals.
//
// Both lists must have the same length. Each required entry is compared
// against the whole on-hand list and produces one result per name match,
// so deduplicated, name-aligned lists give exactly one entry per
// ingredient. Negative results (more in stock than needed) are kept.
func ComputeOrder(required, onHand []domain.Ingredient, people int) ([]domain.Ingredient, error) {
	if len(required) != len(onHand) {
		return nil, &domain.MismatchError{Required: len(required), OnHand: len(onHand)}
	}

	scale := decimal.NewFromInt(int64(people))
	out := make([]domain.Ingredient, 0, len(required))
	for _, r := range required {
		need := r.Quantity.Mul(scale)
		for _, s := range onHand {
			if !r.SameKind(s) {
				continue
			}
			out = append(out, r.WithQuantity(need.Sub(s.Quantity).Round(quantityPlaces)))
		}
	}
	return out, nil
}

func copyList(list []domain.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, len(list))
	copy(out, list)
	return out
}
