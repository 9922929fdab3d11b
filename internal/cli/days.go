package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/calcprods/internal/dayspec"
	"github.com/hammamikhairi/calcprods/internal/display"
	"github.com/hammamikhairi/calcprods/internal/storage"
)

func newDaysCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the day records found in the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, f)
			if err != nil {
				return err
			}
			set, err := dayspec.Parse(cfg.Days)
			if err != nil {
				return err
			}

			store := storage.NewCSVStore(cfg.DataDir, log)
			records, err := store.LoadDayRecords(cmd.Context())
			if err != nil {
				return err
			}

			ui := display.NewUI(cmd.OutOrStdout())
			ui.PrintTable(display.RenderDayRecords(records, set.Contains))
			ui.PrintHint(fmt.Sprintf("%d records in %s, * = selected by --days %s", len(records), store.DataDir(), cfg.Days))
			return nil
		},
	}
}
