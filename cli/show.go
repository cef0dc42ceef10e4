package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <check-id>",
		Short: "Show full details of a single check",
		Long: `Show full details of a single check record.

The argument may be a full check ID, a unique ID prefix, or the short
suffix printed in the logs table.`,
		Example: `  mailgate show chk_20250115T093012_ab12cd34
  mailgate show ab12cd34`,
		Args: cobra.ExactArgs(1),
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

			rec, err := resolveCheck(ctx, app.Store, args[0])
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !globalFlags.NoColor,
				Verbose:   globalFlags.Verbose,
			})

			return presenter.RenderCheckDetail(recordToDetailView(rec))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, jsonl, csv)")

	return cmd
}

// resolveCheck looks a record up by full check ID, then by ID prefix, then
// by the short suffix shown in the logs table.
func resolveCheck(ctx context.Context, store storage.Store, arg string) (*storage.Record, error) {
	rec, err := store.GetCheck(ctx, arg)
	if err != nil {
		return nil, ErrDatabase("failed to query check", err)
	}
	if rec != nil {
		return rec, nil
	}

	rec, err = store.GetCheckByPrefix(ctx, arg)
	if err != nil {
		return nil, ErrInput(fmt.Sprintf("ambiguous check ID prefix: %s", arg), err)
	}
	if rec != nil {
		return rec, nil
	}

	if !strings.HasPrefix(arg, "chk_") {
		if rec, err := resolveCheckBySuffix(ctx, store, arg); err != nil || rec != nil {
			return rec, err
		}
	}

	return nil, NewCLIError(ExitInput, fmt.Sprintf("check not found: %s", arg))
}

// resolveCheckBySuffix scans recent records for a unique suffix match.
func resolveCheckBySuffix(ctx context.Context, store storage.Store, suffix string) (*storage.Record, error) {
	recs, err := store.QueryChecks(ctx, &storage.Filter{Limit: 1000})
	if err != nil {
		return nil, ErrDatabase("failed to query checks", err)
	}

	var found *storage.Record
	for _, rec := range recs {
		if strings.HasSuffix(rec.CheckID, suffix) {
			if found != nil {
				return nil, ErrInput(fmt.Sprintf("ambiguous check ID suffix: %s", suffix), nil)
			}
			found = rec
		}
	}
	return found, nil
}
