package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroSplit(t *testing.T) {
	c, p, f, ok := MacroSplit(2, 4, 0)
	assert.True(t, ok)
	assert.InDelta(t, 33.33, c, 0.01)
	assert.InDelta(t, 66.67, p, 0.01)
	assert.Equal(t, 0.0, f)

	_, _, _, ok = MacroSplit(0, 0, 0)
	assert.False(t, ok)
}

func TestFormatMacros(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"basil", Item{Calories: 24.4, CarbsTotalG: 2, ProteinG: 4}, "33/67/0"},
		{"carrots", Item{Calories: 35, CarbsTotalG: 8, ProteinG: 1, FatTotalG: 2}, "59/7/33"},
		{"no calories", Item{Calories: 0, CarbsTotalG: 1}, ""},
		{"calories but no macros", Item{Calories: 10}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMacros(tt.item))
		})
	}
}

func TestToMacros(t *testing.T) {
	m := ToMacros(Item{Name: "rice", Calories: 127.4, CarbsTotalG: 28.4, ProteinG: 2.7, FatTotalG: 0.4})
	assert.Equal(t, "rice", m.Name)
	assert.Equal(t, 127.4, m.CaloriesKcal)
	assert.Equal(t, 28.4, m.CarbsG)
	assert.Equal(t, 2.7, m.ProteinG)
	assert.Equal(t, 0.4, m.FatG)
	assert.Equal(t, "89/8/3", m.Macros)
}
