package domain

// Macros holds the nutrition facts of one ingredient.
type Macros struct {
	Name         string
	CaloriesKcal float64
	CarbsG       float64
	ProteinG     float64
	FatG         float64
	// Macros is the carbs/protein/fat energy split in percent, e.g. "87/9/5".
	// Empty when the upstream has no calorie data.
	Macros string
}
