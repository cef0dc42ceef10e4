package cli

import (
	"context"
	"io"
	"os"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/core/outputcheck"
	"github.com/mailgate/mailgate/core/pipeline"
	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// NewOutputCmd creates the output command for validating generated replies.
func NewOutputCmd() *cobra.Command {
	var (
		format    string
		file      string
		replyType string
		noSave    bool
	)

	cmd := &cobra.Command{
		Use:   "output",
		Short: "Validate a generated reply before sending",
		Long: `Output runs one generated reply through the output validator: leaked
marker detection, sensitive-data patterns, URL allowlisting, and length
limits for the given reply type.

The reply text is read from stdin or --file. The check record is
persisted unless --no-save is given. Exits with code 5 when the reply
is unsendable.`,
		Example: `  generate-reply | mailgate output --reply-type automated
  mailgate output --file reply.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var rt outputcheck.ReplyType
			if replyType != "" {
				parsed, err := outputcheck.ParseReplyType(replyType)
				if err != nil {
					return ErrInput("invalid reply type", err)
				}
				rt = parsed
			}

			content, err := readReply(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			result := app.Pipeline.CheckOutput(ctx, content, rt)

			if !noSave {
				if err := app.InitStore(ctx); err != nil {
					return ErrDatabase("failed to open database", err)
				}
				defer func() {
					if err := app.Close(); err != nil {
						log.Errorf("failed to close store: %v", err)
					}
				}()

				if err := app.Store.SaveCheck(ctx, outputRecord(result)); err != nil {
					return ErrDatabase("failed to save check record", err)
				}
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !globalFlags.NoColor,
				Verbose:   globalFlags.Verbose,
			})

			if err := presenter.RenderOutputCheck(outputCheckView(result)); err != nil {
				return err
			}

			if !result.Passed {
				return ErrBlocked("reply failed output validation")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, jsonl, csv)")
	cmd.Flags().StringVar(&file, "file", "", "read the reply text from this file instead of stdin")
	cmd.Flags().StringVar(&replyType, "reply-type", "", "reply type for length limits (automated, reviewed)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the check record")

	return cmd
}

// readReply reads the generated reply text from a file or stdin.
func readReply(stdin io.Reader, file string) (string, error) {
	var raw []byte
	var err error
	if file != "" {
		raw, err = os.ReadFile(file)
		if err != nil {
			return "", ErrInput("failed to read reply file", err)
		}
	} else {
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return "", ErrInput("failed to read stdin", err)
		}
	}
	if len(raw) == 0 {
		return "", ErrInput("reply is empty", nil)
	}
	return string(raw), nil
}

// outputRecord converts an output check result into its storage record.
func outputRecord(result *pipeline.OutputCheckResult) *storage.Record {
	rec := &storage.Record{
		CheckID:        result.ID,
		Timestamp:      result.Timestamp,
		DurationMs:     result.Duration.Milliseconds(),
		Direction:      storage.DirectionOutput,
		Passed:         result.Passed,
		RequiresReview: result.RequiresReview,
	}

	if val := result.Validation; val != nil {
		rec.RiskScore = val.RiskScore
		rec.RiskBand = pipeline.BandFor(val.RiskScore).String()
		rec.ContentHash = val.ContentHash
		seen := make(map[string]bool, len(val.Violations))
		for _, viol := range val.Violations {
			kind := viol.Kind.String()
			if !seen[kind] {
				seen[kind] = true
				rec.ViolationKinds = append(rec.ViolationKinds, kind)
			}
		}
		if !val.Valid {
			rec.Blocked = true
			rec.BlockReason = "critical output violation"
		}
		rec.Detail = map[string]interface{}{
			"violations": len(val.Violations),
			"redacted":   val.RedactedContent != "",
		}
	}

	return rec
}

// outputCheckView converts an output check result into its display view.
func outputCheckView(result *pipeline.OutputCheckResult) *tui.OutputCheckView {
	view := &tui.OutputCheckView{
		ID:             result.ID,
		Timestamp:      result.Timestamp,
		Passed:         result.Passed,
		RequiresReview: result.RequiresReview,
		SafeContent:    result.SafeContent,
		DurationMs:     result.Duration.Milliseconds(),
	}

	if val := result.Validation; val != nil {
		view.RiskScore = val.RiskScore
		for _, viol := range val.Violations {
			view.Violations = append(view.Violations, tui.ViolationView{
				Kind:        viol.Kind.String(),
				Severity:    viol.Severity.String(),
				Description: viol.Description,
			})
		}
	}

	return view
}
