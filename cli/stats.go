package cli

import (
	"context"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/tui"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated check statistics",
		Long: `Show aggregated check statistics.

Displays totals, verdict counts, risk band distribution and direction
breakdown over all stored check records.`,
		Example: `  mailgate stats
  mailgate stats --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}

			defer func() {
				if err := app.Close(); err != nil {
					log.Errorf("failed to close app: %v", err)
				}
			}()

			stats, err := app.Store.GetStats(ctx)
			if err != nil {
				return ErrDatabase("failed to query statistics", err)
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !globalFlags.NoColor,
			})

			return presenter.RenderStats(statsToView(stats))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, jsonl, csv)")

	return cmd
}
