package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/core/email"
	"github.com/mailgate/mailgate/core/pipeline"
	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// NewCheckCmd creates the check command for gating inbound email.
func NewCheckCmd() *cobra.Command {
	var (
		format     string
		file       string
		subject    string
		from       string
		body       string
		showDiff   bool
		showPrompt bool
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an inbound email for prompt injection",
		Long: `Check runs one inbound email through the security pipeline:
sanitizer, optional injection classifier, and spotlighting prompt builder.

The email is read as JSON from stdin or --file, or assembled from the
--subject/--from/--body flags. The check record is persisted unless
--no-save is given. Exits with code 5 when the content is blocked.`,
		Example: `  cat email.json | mailgate check
  mailgate check --file email.json --diff
  mailgate check --from alice@example.com --subject "Order" --body "Where is my order?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			in, err := readInboundEmail(cmd.InOrStdin(), file, subject, from, body)
			if err != nil {
				return err
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			result, err := runInboundCheck(ctx, app, in)
			if err != nil {
				return err
			}

			if !noSave {
				if err := app.InitStore(ctx); err != nil {
					return ErrDatabase("failed to open database", err)
				}
				defer func() {
					if err := app.Close(); err != nil {
						log.Errorf("failed to close store: %v", err)
					}
				}()

				if err := app.Store.SaveCheck(ctx, inboundRecord(result, in)); err != nil {
					return ErrDatabase("failed to save check record", err)
				}
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors() && !globalFlags.NoColor,
				Verbose:   globalFlags.Verbose || showPrompt,
			})

			if err := presenter.RenderCheckDetail(inboundDetailView(result, in)); err != nil {
				return err
			}

			if showDiff {
				if err := presenter.RenderDiff(sanitizerDiffView(result, in)); err != nil {
					return err
				}
			}

			if result.Blocked {
				return ErrBlocked(result.BlockReason)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, jsonl, csv)")
	cmd.Flags().StringVar(&file, "file", "", "read the email as JSON from this file instead of stdin")
	cmd.Flags().StringVar(&subject, "subject", "", "email subject (bypasses JSON input)")
	cmd.Flags().StringVar(&from, "from", "", "email sender address (bypasses JSON input)")
	cmd.Flags().StringVar(&body, "body", "", "email body (bypasses JSON input)")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "show a unified diff of the original vs sanitized body")
	cmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "include the generator-ready prompt in the output")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the check record")

	return cmd
}

// readInboundEmail assembles the email from flags, a JSON file, or stdin.
func readInboundEmail(stdin io.Reader, file, subject, from, body string) (*email.Inbound, error) {
	if subject != "" || from != "" || body != "" {
		in := &email.Inbound{Subject: subject, From: from, Body: body}
		if in.IsEmpty() {
			return nil, ErrInput("email has no subject or body", nil)
		}
		return in, nil
	}

	var raw []byte
	var err error
	if file != "" {
		raw, err = os.ReadFile(file)
		if err != nil {
			return nil, ErrInput("failed to read email file", err)
		}
	} else {
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return nil, ErrInput("failed to read stdin", err)
		}
	}

	var in email.Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, ErrInput("failed to parse email JSON", err)
	}
	if in.IsEmpty() {
		return nil, ErrInput("email has no subject or body", nil)
	}
	return &in, nil
}

// runInboundCheck runs the pipeline, with a spinner when the classifier
// may make a network call.
func runInboundCheck(ctx context.Context, app *App, in *email.Inbound) (*pipeline.CheckResult, error) {
	if !app.Config.Classifier.Enabled {
		return app.Pipeline.CheckInbound(ctx, in), nil
	}
	return tui.RunWithSpinner("Classifying...", func() (*pipeline.CheckResult, error) {
		return app.Pipeline.CheckInbound(ctx, in), nil
	})
}

// inboundRecord converts a pipeline result into its storage record.
func inboundRecord(result *pipeline.CheckResult, in *email.Inbound) *storage.Record {
	rec := &storage.Record{
		CheckID:        result.ID,
		Timestamp:      result.Timestamp,
		DurationMs:     result.Duration.Milliseconds(),
		Direction:      storage.DirectionInbound,
		Passed:         result.Passed,
		Blocked:        result.Blocked,
		RequiresReview: result.RequiresReview,
		RiskScore:      result.RiskScore,
		RiskBand:       result.RiskBand.String(),
		BlockReason:    result.BlockReason,
		Sender:         in.From,
		Subject:        in.Subject,
	}

	if san := result.Sanitization; san != nil {
		rec.ContentHash = san.ContentHash
		for _, kind := range san.KindsFound() {
			rec.PatternKinds = append(rec.PatternKinds, kind.String())
		}
		rec.Detail = map[string]interface{}{
			"sanitizer_risk_score": san.RiskScore,
			"pattern_matches":      len(san.Patterns),
			"modified":             san.Modified,
		}
	}

	if cls := result.Classification; cls != nil {
		rec.Technique = cls.Technique.String()
		if rec.Detail == nil {
			rec.Detail = map[string]interface{}{}
		}
		rec.Detail["classifier_confidence"] = cls.Confidence
		rec.Detail["classifier_is_attack"] = cls.IsAttack
		if cls.Reasoning != "" {
			rec.Detail["classifier_reasoning"] = cls.Reasoning
		}
	}

	if result.Prompt != nil {
		rec.Prompt = result.Prompt.User
	}

	return rec
}

// inboundDetailView converts a pipeline result into its display view.
func inboundDetailView(result *pipeline.CheckResult, in *email.Inbound) *tui.CheckDetailView {
	view := &tui.CheckDetailView{
		CheckView: tui.CheckView{
			ID:             result.ID,
			ShortID:        shortCheckID(result.ID),
			Timestamp:      result.Timestamp,
			Direction:      string(storage.DirectionInbound),
			RiskScore:      result.RiskScore,
			RiskBand:       result.RiskBand.String(),
			Passed:         result.Passed,
			Blocked:        result.Blocked,
			RequiresReview: result.RequiresReview,
			Sender:         in.From,
			Subject:        in.Subject,
			DurationMs:     result.Duration.Milliseconds(),
		},
		BlockReason: result.BlockReason,
	}

	if san := result.Sanitization; san != nil {
		view.ContentHash = san.ContentHash
		view.PatternCount = len(san.Patterns)
		for _, kind := range san.KindsFound() {
			view.PatternKinds = append(view.PatternKinds, kind.String())
		}
	}

	if cls := result.Classification; cls != nil {
		view.Technique = cls.Technique.String()
	}

	if result.Prompt != nil {
		view.Prompt = fmt.Sprintf("[system]\n%s\n\n[user]\n%s", result.Prompt.System, result.Prompt.User)
	}

	return view
}

// sanitizerDiffView builds a unified diff of the original body against the
// sanitized body.
func sanitizerDiffView(result *pipeline.CheckResult, in *email.Inbound) *tui.DiffView {
	view := &tui.DiffView{
		CheckID:   result.ID,
		Timestamp: result.Timestamp,
	}

	san := result.Sanitization
	if san == nil || !san.Modified {
		view.Message = "sanitizer made no changes"
		return view
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(in.Body),
		B:        difflib.SplitLines(san.CleanedText),
		FromFile: "original",
		ToFile:   "sanitized",
		Context:  3,
	})
	if err != nil || diff == "" {
		view.Message = "diff unavailable"
		return view
	}

	view.Available = true
	view.Content = diff
	return view
}
