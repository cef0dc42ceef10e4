package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/core/retention"
	"github.com/mailgate/mailgate/internal/version"
	"github.com/mailgate/mailgate/tui"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pipeline status and health",
		Long: `Show pipeline status and health.

Displays the current status of the tool including:
- Tool version
- Classifier configuration
- Database information
- Configuration settings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			app.Presenter = tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !globalFlags.NoColor,
			})

			// Build status view
			view := &tui.StatusView{
				Version: version.Version,
			}

			// Classifier status
			view.Classifier = tui.ClassifierStatusView{
				Enabled: app.Config.Classifier.Enabled,
			}
			if app.Config.Classifier.Enabled {
				view.Classifier.Endpoint = app.Config.Classifier.Endpoint
				view.Classifier.Model = app.Config.Classifier.Model
			}

			// Database info
			view.Database = tui.DatabaseView{
				Location: app.Config.GetDatabasePath(),
			}

			if stat, err := os.Stat(view.Database.Location); err == nil {
				view.Database.SizeBytes = stat.Size()
				view.Database.SizeHuman = tui.FormatBytes(stat.Size())

				// Initialize store to get actual counts
				if err := app.InitStore(ctx); err == nil {
					defer app.Close()
					if stats, err := app.Store.GetStats(ctx); err == nil {
						view.Database.CheckCount = stats.TotalChecks
						view.Database.OldestCheck = stats.OldestCheck
						view.Database.NewestCheck = stats.NewestCheck
					}
				}
			}

			// Config info
			view.Config = tui.ConfigStatusView{
				Location:      app.Paths.ConfigFile,
				RetentionDays: app.Config.Storage.RetentionDays,
			}

			// If retention is enabled, count checks that would be cleaned up
			policy := retention.NewPolicy(app.Config.Storage.RetentionDays)
			if policy.IsEnabled() && app.Store != nil {
				cutoff := policy.CutoffTime()
				view.Config.RetentionCutoff = cutoff
				if count, err := app.Store.CountChecksBefore(ctx, cutoff); err == nil {
					view.Config.ChecksToClean = count
				}
			}

			return app.Presenter.RenderStatus(view)
		},
	}

	return cmd
}
