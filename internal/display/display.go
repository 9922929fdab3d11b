// Package display renders the terminal side of a run: styled status lines,
// ingredient and nutrition tables, and the interactive mode menu.
package display

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is the muted slate used for the run header.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Primary text, light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text, dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Soft mint for written artifacts.
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// Soft coral for errors and alerts.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	headerCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	indexCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI writes styled lines to a terminal. Safe for concurrent use.
type UI struct {
	mu  sync.Mutex
	out io.Writer
}

// NewUI creates a UI writing to out, or stdout when out is nil.
func NewUI(out io.Writer) *UI {
	if out == nil {
		out = os.Stdout
	}
	return &UI{out: out}
}

// Println prints a line.
func (u *UI) Println(a ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, a...)
}

// PrintInfo prints a primary line.
func (u *UI) PrintInfo(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintSuccess prints a line announcing a written artifact.
func (u *UI) PrintSuccess(text string) {
	u.Println(successStyle.Render("  " + text))
}

// PrintUrgent prints an urgent/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintHeader prints the centred run header.
func (u *UI) PrintHeader(title, subtitle string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprint(u.out, RenderHeader(title, subtitle, termWidth()))
}

// PrintTable prints a rendered table followed by a blank line.
func (u *UI) PrintTable(rendered string) {
	u.Println(rendered)
	u.Println()
}
