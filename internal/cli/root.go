// Package cli implements the calcprods commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/calcprods/internal/app"
	"github.com/hammamikhairi/calcprods/internal/config"
	"github.com/hammamikhairi/calcprods/internal/display"
	"github.com/hammamikhairi/calcprods/internal/logger"
	"github.com/hammamikhairi/calcprods/internal/nutrition"
	"github.com/hammamikhairi/calcprods/internal/storage"
)

const longHelp = `Calculate products to order for a retreat menu.

Day files live in the data directory as day<N>.csv or day<N>.<slot>.csv
with a name,quantity,unit header. The chosen artifact is written to the
out directory:

  instock    empty stock list to fill in during a stock count
  order      what to buy: needs for all people minus data/instock.csv
  nutrition  nutrition facts per ingredient (needs FOOD_API_KEY)

Examples:
  calcprods -p 60 -d 1,2,7 -s --nomenu
  calcprods -d 0-3 -o -m -v`

// rootFlags holds the values of every flag of the command tree.
type rootFlags struct {
	configPath string
	dataDir    string
	outDir     string
	people     int
	days       string
	debug      bool
	quiet      bool

	instock   bool
	order     bool
	nutrition bool
	noMenu    bool
	print     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:           "calcprods",
		Short:         "Calculate products to order for a retreat menu",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default: $"+config.EnvConfig+" or ./"+config.DefaultFile+")")
	pf.StringVar(&f.dataDir, "data-dir", def.DataDir, "Directory holding day files and instock.csv")
	pf.StringVar(&f.outDir, "out-dir", def.OutDir, "Directory the artifacts are written to")
	pf.IntVarP(&f.people, "people", "p", def.People, "Number of people")
	pf.StringVarP(&f.days, "days", "d", def.Days, "Days to include: 3, 1,2,7 or 0-10")
	pf.BoolVar(&f.debug, "debug", false, "Verbose logging")
	pf.BoolVar(&f.quiet, "quiet", false, "Disable all logging")

	fl := cmd.Flags()
	fl.BoolVarP(&f.instock, "instock", "s", false, "Generate stock list with empty values")
	fl.BoolVarP(&f.order, "order", "o", false, "Calculate order list")
	fl.BoolVarP(&f.nutrition, "nutrition", "n", false, "Get nutritional values")
	fl.BoolVarP(&f.noMenu, "nomenu", "m", false, "Skip menu selection and use switches instead")
	fl.BoolVarP(&f.print, "print", "v", false, "Print the resulting list")

	cmd.AddCommand(newDaysCmd(f))
	return cmd
}

// Execute runs the command tree and reports a failure on stderr.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		display.NewUI(cmd.ErrOrStderr()).PrintUrgent("error: " + err.Error())
	}
	return err
}

func runRoot(cmd *cobra.Command, f *rootFlags) error {
	ctx := cmd.Context()
	cfg, log, err := setup(cmd, f)
	if err != nil {
		return err
	}

	store := storage.NewCSVStore(cfg.DataDir, log)
	eng, err := app.BuildEngine(ctx, store, cfg.Days, cfg.People, log)
	if err != nil {
		return err
	}

	ui := display.NewUI(cmd.OutOrStdout())
	opts := []app.Option{app.WithUI(ui)}

	if cfg.Nutrition.APIKey != "" {
		lookup, closeFn := newLookup(cfg, log)
		defer closeFn()
		opts = append(opts, app.WithLookup(lookup))
	}

	if !f.noMenu {
		if in, ok := cmd.InOrStdin().(*os.File); ok && display.IsTerminal(in) {
			ui.PrintHeader("calcprods", fmt.Sprintf("days %s | %d people", cfg.Days, cfg.People))
			opts = append(opts, app.WithSelector(display.NewMenuSelector(in, cmd.OutOrStdout())))
		} else {
			log.Warn("stdin is not a terminal, menu skipped")
		}
	}

	a := app.New(store, eng, paths(cfg), log, opts...)
	return a.Run(ctx, app.Options{
		Instock:   f.instock,
		Order:     f.order,
		Nutrition: f.nutrition,
		NoMenu:    f.noMenu,
		Print:     f.print,
	})
}

// setup resolves the config and creates the logger for a command.
func setup(cmd *cobra.Command, f *rootFlags) (config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return cfg, nil, err
	}
	log, err := newLogger(cfg, f, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	log.Debug("config: data=%s out=%s days=%s people=%d", cfg.DataDir, cfg.OutDir, cfg.Days, cfg.People)
	return cfg, log, nil
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	path := f.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = f.outDir
	}
	if flags.Changed("people") {
		cfg.People = f.people
	}
	if flags.Changed("days") {
		cfg.Days = f.days
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, f *rootFlags, out io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if f.debug {
		level = logger.LevelVerbose
	}
	if f.quiet {
		level = logger.LevelOff
	}
	return logger.New(level, out), nil
}

// newLookup builds the cached nutrition client. A cache that cannot be
// opened on disk degrades to memory only.
func newLookup(cfg config.Config, log *logger.Logger) (*nutrition.CachedLookup, func()) {
	cache, err := nutrition.NewCache(cfg.Nutrition.CachePath, log)
	if err != nil {
		log.Warn("nutrition cache disabled: %v", err)
		cache, _ = nutrition.NewCache("", log)
	}

	client := nutrition.NewClient(cfg.Nutrition.APIKey, log,
		nutrition.WithEndpoint(cfg.Nutrition.Endpoint),
		nutrition.WithHTTPTimeout(cfg.Nutrition.Timeout),
	)

	return nutrition.NewCachedLookup(client, cache), func() {
		hits, misses := cache.Stats()
		log.Debug("nutrition cache: hits=%d misses=%d", hits, misses)
		if err := cache.Close(); err != nil {
			log.Warn("nutrition cache: close: %v", err)
		}
	}
}

func paths(cfg config.Config) app.Paths {
	return app.Paths{
		StockIn:      cfg.StockInPath(),
		StockOut:     cfg.StockOutPath(),
		OrderOut:     cfg.OrderOutPath(),
		NutritionOut: cfg.NutritionOutPath(),
	}
}
