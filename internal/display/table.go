package display

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hammamikhairi/calcprods/internal/domain"
)

// RenderIngredients renders a flat ingredient list as a table. Blank
// quantities show as empty cells.
func RenderIngredients(list []domain.Ingredient) string {
	rows := make([][]string, 0, len(list))
	for i, ing := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ing.Name,
			ing.QuantityString(),
			ing.Unit.String(),
		})
	}
	return renderTable([]string{"#", "name", "quantity", "unit"}, rows, 0, 2)
}

// RenderMacros renders nutrition facts as a table.
func RenderMacros(list []domain.Macros) string {
	rows := make([][]string, 0, len(list))
	for i, m := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Name,
			formatFloat(m.CaloriesKcal),
			formatFloat(m.CarbsG),
			formatFloat(m.ProteinG),
			formatFloat(m.FatG),
			m.Macros,
		})
	}
	return renderTable([]string{"#", "name", "kcal", "carbs g", "protein g", "fat g", "c/p/f"}, rows, 0, 2, 3, 4, 5)
}

// RenderDayRecords renders one row per day record. selected marks the
// days that take part in the run.
func RenderDayRecords(records []domain.DayRecord, selected func(day int) bool) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		mark := ""
		if selected(r.Day) {
			mark = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.ID,
			strconv.Itoa(r.Day),
			r.Slot,
			strconv.Itoa(len(r.Ingredients)),
			mark,
		})
	}
	return renderTable([]string{"#", "record", "day", "slot", "ingredients", "selected"}, rows, 0, 2, 4)
}

// renderTable lays out rows under headers with the given columns
// right-aligned and the rest left-aligned.
func renderTable(headers []string, rows [][]string, rightCols ...int) string {
	right := make(map[int]bool, len(rightCols))
	for _, c := range rightCols {
		right[c] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = headerCellStyle
			case col == 0:
				s = indexCellStyle
			default:
				s = cellStyle
			}
			if right[col] {
				return s.Align(lipgloss.Right)
			}
			return s.Align(lipgloss.Left)
		})
	return t.Render()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
