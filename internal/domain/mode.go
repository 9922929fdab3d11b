package domain

// Mode selects which artifact a run produces.
type Mode int

const (
	ModeNone Mode = iota
	ModeInstock
	ModeOrder
	ModeNutrition
)

// String returns the mode name used in flags and logs.
func (m Mode) String() string {
	switch m {
	case ModeInstock:
		return "instock"
	case ModeOrder:
		return "order"
	case ModeNutrition:
		return "nutrition"
	default:
		return "none"
	}
}
