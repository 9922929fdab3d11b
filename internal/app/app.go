// Package app drives one run: it picks the mode, asks the engine for the
// matching list, writes it and optionally prints it.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/calcprods/internal/dayspec"
	"github.com/hammamikhairi/calcprods/internal/display"
	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/engine"
	"github.com/hammamikhairi/calcprods/internal/logger"
	"github.com/hammamikhairi/calcprods/internal/nutrition"
)

// ErrMissingAPIKey is returned for a nutrition run without a lookup.
var ErrMissingAPIKey = errors.New("nutrition: " + nutrition.EnvAPIKey + " is not set")

// Paths are the files a run reads and writes.
type Paths struct {
	StockIn      string
	StockOut     string
	OrderOut     string
	NutritionOut string
}

// Options are the per-run switches.
type Options struct {
	Instock   bool
	Order     bool
	Nutrition bool
	NoMenu    bool
	Print     bool
}

// ResolveMode applies the mode flags over the menu choice. Flags win, in
// the order instock, order, nutrition.
func ResolveMode(menu domain.Mode, opts Options) domain.Mode {
	switch {
	case opts.Instock:
		return domain.ModeInstock
	case opts.Order:
		return domain.ModeOrder
	case opts.Nutrition:
		return domain.ModeNutrition
	}
	return menu
}

// BuildEngine parses the day selection, loads the day records and builds
// the engine over them.
func BuildEngine(ctx context.Context, src domain.RecordSource, days string, people int, log *logger.Logger) (*engine.Engine, error) {
	set, err := dayspec.Parse(days)
	if err != nil {
		return nil, err
	}
	records, err := src.LoadDayRecords(ctx)
	if err != nil {
		return nil, err
	}
	return engine.New(records, set, people, log), nil
}

// ── App ──────────────────────────────────────────────────────────

// Option configures the App.
type Option func(*App)

// WithLookup enables nutrition runs.
func WithLookup(l domain.NutritionLookup) Option {
	return func(a *App) { a.lookup = l }
}

// WithSelector sets the interactive mode menu.
func WithSelector(s domain.ModeSelector) Option {
	return func(a *App) { a.selector = s }
}

// WithUI sets where status lines and tables go.
func WithUI(ui *display.UI) Option {
	return func(a *App) { a.ui = ui }
}

// App runs one invocation against a store.
type App struct {
	store    domain.Store
	engine   *engine.Engine
	lookup   domain.NutritionLookup
	selector domain.ModeSelector
	ui       *display.UI
	log      *logger.Logger
	paths    Paths
}

// New creates an App. Without WithUI output goes to stdout.
func New(store domain.Store, eng *engine.Engine, paths Paths, log *logger.Logger, opts ...Option) *App {
	a := &App{
		store:  store,
		engine: eng,
		log:    log,
		paths:  paths,
	}
	for _, o := range opts {
		o(a)
	}
	if a.ui == nil {
		a.ui = display.NewUI(nil)
	}
	return a
}

// Run selects the mode and produces its artifact. A run with no mode is
// not an error.
func (a *App) Run(ctx context.Context, opts Options) error {
	mode, err := a.selectMode(ctx, opts)
	if err != nil {
		return err
	}
	if mode == domain.ModeNone {
		a.log.Warn("no mode selected, nothing to do")
		a.ui.PrintHint("Nothing selected. Use -s, -o or -n with --nomenu.")
		return nil
	}

	a.log.Info("run: mode=%s days=%v people=%d", mode, a.engine.Days(), a.engine.People())
	a.ui.PrintInfo(fmt.Sprintf("%s for days %v, %d people", mode, a.engine.Days(), a.engine.People()))

	switch mode {
	case domain.ModeInstock:
		return a.instock(ctx, opts.Print)
	case domain.ModeOrder:
		return a.order(ctx, opts.Print)
	case domain.ModeNutrition:
		return a.nutrition(ctx, opts.Print)
	}
	return fmt.Errorf("run: unknown mode %d", mode)
}

func (a *App) selectMode(ctx context.Context, opts Options) (domain.Mode, error) {
	menu := domain.ModeNone
	if !opts.NoMenu && a.selector != nil {
		m, err := a.selector.SelectMode(ctx)
		switch {
		case errors.Is(err, display.ErrMenuAborted):
			a.log.Debug("menu: aborted")
		case err != nil:
			return domain.ModeNone, err
		default:
			menu = m
		}
	}
	return ResolveMode(menu, opts), nil
}

func (a *App) instock(ctx context.Context, show bool) error {
	list := a.engine.EmptyStockList()
	if err := a.store.WriteIngredients(ctx, a.paths.StockOut, list); err != nil {
		return fmt.Errorf("instock: %w", err)
	}
	a.ui.PrintSuccess(fmt.Sprintf("Wrote %d ingredients to %s", len(list), a.paths.StockOut))
	if show {
		a.ui.PrintTable(display.RenderIngredients(list))
	}
	return nil
}

func (a *App) order(ctx context.Context, show bool) error {
	onHand, err := a.store.ReadIngredients(ctx, a.paths.StockIn)
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	list, err := a.engine.Order(a.paths.StockIn, onHand)
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	if err := a.store.WriteIngredients(ctx, a.paths.OrderOut, list); err != nil {
		return fmt.Errorf("order: %w", err)
	}
	a.ui.PrintSuccess(fmt.Sprintf("Wrote %d ingredients to %s", len(list), a.paths.OrderOut))
	if show {
		a.ui.PrintTable(display.RenderIngredients(list))
	}
	return nil
}

func (a *App) nutrition(ctx context.Context, show bool) error {
	if a.lookup == nil {
		return ErrMissingAPIKey
	}
	names := a.engine.IngredientNames()
	list, err := nutrition.Enrich(ctx, a.lookup, names, a.log)
	if err != nil {
		return fmt.Errorf("nutrition: %w", err)
	}
	if err := a.store.WriteMacros(ctx, a.paths.NutritionOut, list); err != nil {
		return fmt.Errorf("nutrition: %w", err)
	}
	a.ui.PrintSuccess(fmt.Sprintf("Wrote %d of %d ingredients to %s", len(list), len(names), a.paths.NutritionOut))
	if show {
		a.ui.PrintTable(display.RenderMacros(list))
	}
	return nil
}
