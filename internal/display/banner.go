package display

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// RenderHeader returns title and subtitle horizontally centred for a
// terminal of the given width, each on its own line.
func RenderHeader(title, subtitle string, width int) string {
	lines := []string{title}
	if subtitle != "" {
		lines = append(lines, subtitle)
	}

	var b strings.Builder
	for i, l := range lines {
		w := lipgloss.Width(l)
		if pad := (width - w) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i == 0 {
			b.WriteString(BannerStyle.Bold(true).Render(l))
		} else {
			b.WriteString(secondaryStyle.Render(l))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
