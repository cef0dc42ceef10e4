package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui/component/watch"
)

type watchParams struct {
	interval  time.Duration
	direction string
	since     string
	limit     int
}

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	var p watchParams

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live check feed",
		Long: `Launch a fullscreen TUI streaming check records as they are written.

Shows a live feed of inbound and output checks with a stats sidebar.
Filter by risk band with 1-5 and by direction with d.`,
		Example: `  mailgate watch
  mailgate watch --direction inbound
  mailgate watch --since 1h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if p.direction != "" && !storage.Direction(p.direction).IsValid() {
				return ErrInput("invalid direction", nil)
			}

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

			opts := watch.Options{
				Store:           app.Store,
				PollInterval:    p.interval,
				DirectionFilter: p.direction,
				InitialLimit:    p.limit,
			}

			if p.since != "" {
				if sinceTime, err := parseDuration(p.since); err == nil {
					opts.Since = sinceTime
				}
			}

			prog := tea.NewProgram(watch.New(opts), tea.WithAltScreen())
			_, err = prog.Run()

			return err
		},
	}

	cmd.Flags().DurationVar(&p.interval, "interval", 2*time.Second, "poll interval")
	cmd.Flags().StringVar(&p.direction, "direction", "", "filter by direction (inbound, output)")
	cmd.Flags().StringVar(&p.since, "since", "", "backfill checks since (e.g., \"1h\", \"2d\")")
	cmd.Flags().IntVar(&p.limit, "limit", 50, "maximum checks to backfill")

	return cmd
}
