package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// NewLogsCmd creates the logs command.
func NewLogsCmd() *cobra.Command {
	var (
		follow    bool
		interval  time.Duration
		since     string
		until     string
		today     bool
		limit     int
		direction string
		bands     []string
		blocked   bool
		review    bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display recent check records",
		Long: `Display recent check records.

Shows inbound and output checks newest first. Use filters to narrow
down the results.`,
		Example: `  mailgate logs
  mailgate logs --follow
  mailgate logs --since "1h"
  mailgate logs --blocked
  mailgate logs --band high --band critical`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			// In follow mode, force JSONL format for streaming compatibility
			outputFormat := getFormat(format)
			if follow {
				outputFormat = tui.FormatJSONL
			}

			// Update presenter format
			app.Presenter = tui.NewPresenter(outputFormat, tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !follow,
			})

			// Initialize store
			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}

			defer func() {
				err := app.Close()
				if err != nil {
					log.Errorf("failed to close app: %v", err)
				}
			}()

			// Build filter
			filter := &storage.Filter{
				Limit:       limit,
				BlockedOnly: blocked,
				ReviewOnly:  review,
				RiskBands:   bands,
			}

			if direction != "" {
				dir := storage.Direction(direction)
				if !dir.IsValid() {
					return ErrInput(fmt.Sprintf("invalid direction: %q", direction), nil)
				}
				filter.Direction = dir
			}

			if today {
				midnight := time.Now().Truncate(24 * time.Hour)
				filter.Since = &midnight
			} else if since != "" {
				if sinceTime, err := parseDuration(since); err == nil {
					filter.Since = &sinceTime
				}
			} else {
				// Default to last 24 hours
				dayAgo := time.Now().Add(-24 * time.Hour)
				filter.Since = &dayAgo
			}

			if until != "" {
				if untilTime, err := parseDuration(until); err == nil {
					filter.Until = &untilTime
				}
			}

			// Query initial records
			recs, err := app.Store.QueryChecks(ctx, filter)
			if err != nil {
				return err
			}

			// If not in follow mode, just display results and exit
			if !follow {
				if len(recs) == 0 {
					return app.Presenter.RenderMessage("No checks found. Run 'mailgate check' to gate an email.")
				}

				views := make([]*tui.CheckView, len(recs))
				for i, r := range recs {
					views[i] = recordToView(r)
				}
				return app.Presenter.RenderChecks(views)
			}

			// Follow mode: display initial records, then poll for new ones
			var lastTimestamp time.Time
			var lastID uuid.UUID
			if len(recs) > 0 {
				views := make([]*tui.CheckView, len(recs))
				for i, r := range recs {
					views[i] = recordToView(r)
				}
				if err := app.Presenter.RenderChecks(views); err != nil {
					return err
				}
				// Records are returned newest first; poll for records newer
				// than the newest (first in slice).
				lastTimestamp = recs[0].Timestamp
				lastID = recs[0].ID
			} else {
				lastTimestamp = time.Now()
			}

			// Set up signal handling for graceful exit
			sigCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
			defer cancel()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			// Waiting indicator on stderr, so the JSONL stream on stdout
			// stays clean. Writes nothing when stderr is not a terminal.
			progress := tui.NewProgressWriter(cmd.ErrOrStderr(), app.Config.ShouldUseColors())
			defer progress.Clear()

			// Polling loop
			for {
				select {
				case <-sigCtx.Done():
					return nil
				case <-ticker.C:
					newRecs, err := app.Store.QueryChecksAfter(sigCtx, lastTimestamp, lastID, 100)
					if err != nil {
						// Don't exit on transient errors
						continue
					}

					if len(newRecs) == 0 {
						progress.Update("waiting for checks... (%s)", time.Now().Format("15:04:05"))
						continue
					}

					views := make([]*tui.CheckView, 0, len(newRecs))
					for _, r := range newRecs {
						if filter.Direction != "" && r.Direction != filter.Direction {
							continue
						}
						views = append(views, recordToView(r))
					}
					if len(views) > 0 {
						progress.Clear()
						if err := app.Presenter.RenderChecks(views); err != nil {
							return err
						}
					}
					newest := newRecs[len(newRecs)-1]
					lastTimestamp = newest.Timestamp
					lastID = newest.ID
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "stream new checks")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "poll interval for follow mode")
	cmd.Flags().StringVar(&since, "since", "", "show checks since (e.g., \"1h\", \"2d\", \"2025-01-15\")")
	cmd.Flags().StringVar(&until, "until", "", "show checks until")
	cmd.Flags().BoolVar(&today, "today", false, "shorthand for since midnight")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum checks")
	cmd.Flags().StringVar(&direction, "direction", "", "filter by direction (inbound, output)")
	cmd.Flags().StringSliceVar(&bands, "band", nil, "filter by risk band (repeatable)")
	cmd.Flags().BoolVar(&blocked, "blocked", false, "only blocked checks")
	cmd.Flags().BoolVar(&review, "review", false, "only checks requiring review")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

// parseDuration parses a duration string like "1h", "2d", or a date.
func parseDuration(s string) (time.Time, error) {
	// Try parsing as duration
	if d, err := time.ParseDuration(s); err == nil {
		return time.Now().Add(-d), nil
	}

	// Try parsing as relative duration (e.g., "1d", "1w")
	if len(s) > 1 {
		unit := s[len(s)-1]
		value := s[:len(s)-1]
		var multiplier time.Duration
		switch unit {
		case 'd':
			multiplier = 24 * time.Hour
		case 'w':
			multiplier = 7 * 24 * time.Hour
		}
		if multiplier > 0 {
			if d, err := time.ParseDuration(value + "h"); err == nil {
				return time.Now().Add(-d * time.Duration(multiplier/time.Hour)), nil
			}
		}
	}

	// Try parsing as date
	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	// Everything else failed, return an error
	return time.Time{}, fmt.Errorf("failed to parse duration")
}
