package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/calcprods/internal/domain"
)

// ErrMenuAborted is returned when the user leaves the menu without
// choosing a mode.
var ErrMenuAborted = errors.New("menu aborted")

// Compile-time interface check.
var _ domain.ModeSelector = (*MenuSelector)(nil)

// menuOption is one selectable line of the menu.
type menuOption struct {
	mode domain.Mode
	text string
}

var menuOptions = []menuOption{
	{domain.ModeInstock, "[1] Generate stock list with empty values"},
	{domain.ModeOrder, "[2] Calculate ePromo order list"},
	{domain.ModeNutrition, "[3] Get nutritional values"},
}

// ── Key bindings ─────────────────────────────────────────────────

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultMenuKeys = menuKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "pick"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Select, k.Quit}
}

// ── MenuSelector ─────────────────────────────────────────────────

// MenuSelector asks for the run mode with an interactive menu.
type MenuSelector struct {
	in  io.Reader
	out io.Writer
}

// NewMenuSelector creates a menu reading keys from in and drawing to out.
// Nil streams fall back to the terminal.
func NewMenuSelector(in io.Reader, out io.Writer) *MenuSelector {
	return &MenuSelector{in: in, out: out}
}

// SelectMode runs the menu until a mode is chosen or the user quits.
func (s *MenuSelector) SelectMode(ctx context.Context) (domain.Mode, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.in != nil {
		opts = append(opts, tea.WithInput(s.in))
	}
	if s.out != nil {
		opts = append(opts, tea.WithOutput(s.out))
	}

	final, err := tea.NewProgram(newMenuModel(), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ModeNone, ctxErr
		}
		return domain.ModeNone, fmt.Errorf("menu: %w", err)
	}

	m, ok := final.(menuModel)
	if !ok || m.aborted {
		return domain.ModeNone, ErrMenuAborted
	}
	return m.chosen, nil
}

// ── Bubble Tea model ─────────────────────────────────────────────

type menuModel struct {
	keys    menuKeys
	help    help.Model
	cursor  int
	chosen  domain.Mode
	aborted bool
}

func newMenuModel() menuModel {
	return menuModel{keys: defaultMenuKeys, help: help.New()}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(menuOptions)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Pick):
		m.cursor = int(km.Runes[0] - '1')
		m.chosen = menuOptions[m.cursor].mode
		return m, tea.Quit
	case key.Matches(km, m.keys.Select):
		m.chosen = menuOptions[m.cursor].mode
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.chosen != domain.ModeNone || m.aborted {
		return ""
	}

	var b strings.Builder
	for i, o := range menuOptions {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + o.text))
		} else {
			b.WriteString(primaryStyle.Render("  " + o.text))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteByte('\n')
	return b.String()
}
