package nutrition

import (
	"fmt"

	"github.com/hammamikhairi/calcprods/internal/domain"
)

// Energy per gram of each macronutrient, in kcal.
const (
	kcalPerGramCarbs   = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// MacroSplit returns the share of energy coming from carbs, protein and fat,
// in percent. ok is false when the grams add up to no energy at all.
func MacroSplit(carbsG, proteinG, fatG float64) (carbs, protein, fat float64, ok bool) {
	c := kcalPerGramCarbs * carbsG
	p := kcalPerGramProtein * proteinG
	f := kcalPerGramFat * fatG

	total := c + p + f
	if total <= 0 {
		return 0, 0, 0, false
	}
	return c * 100 / total, p * 100 / total, f * 100 / total, true
}

// FormatMacros renders an item's split as "c/p/f". Items without calories
// get an empty string.
func FormatMacros(it Item) string {
	if it.Calories == 0 {
		return ""
	}
	c, p, f, ok := MacroSplit(it.CarbsTotalG, it.ProteinG, it.FatTotalG)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.0f/%.0f/%.0f", c, p, f)
}

// ToMacros maps an API item to the domain type.
func ToMacros(it Item) domain.Macros {
	return domain.Macros{
		Name:         it.Name,
		CaloriesKcal: it.Calories,
		CarbsG:       it.CarbsTotalG,
		ProteinG:     it.ProteinG,
		FatG:         it.FatTotalG,
		Macros:       FormatMacros(it),
	}
}
