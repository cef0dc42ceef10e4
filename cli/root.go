// Package cli provides the command-line interface for mailgate.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/config"
	"github.com/mailgate/mailgate/core/classifier"
	"github.com/mailgate/mailgate/core/outputcheck"
	"github.com/mailgate/mailgate/core/pipeline"
	"github.com/mailgate/mailgate/core/sanitizer"
	"github.com/mailgate/mailgate/core/spotlight"
	"github.com/mailgate/mailgate/internal/version"
	"github.com/mailgate/mailgate/storage"
	"github.com/mailgate/mailgate/tui"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Store     storage.Store
	Pipeline  *pipeline.Pipeline
	Presenter tui.Presenter
	Paths     *config.Paths
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	paths := config.ResolvePaths()

	// Create presenter based on config
	presenter := tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
		Writer:    os.Stdout,
		UseColors: cfg.ShouldUseColors(),
	})

	return &App{
		Config:    cfg,
		Pipeline:  buildPipeline(cfg),
		Presenter: presenter,
		Paths:     paths,
	}
}

// buildPipeline wires the security layers from configuration. The
// classifier stage is present only when a classification endpoint is
// configured; otherwise the pipeline degrades to sanitizer-plus-heuristics
// gating.
func buildPipeline(cfg *config.Config) *pipeline.Pipeline {
	san := sanitizer.New()
	spot := spotlight.New()

	val := outputcheck.New(&outputcheck.Config{
		AllowedDomains:  cfg.Output.AllowedDomains,
		MaxAutomatedLen: cfg.Output.MaxAutomatedLen,
		MaxReviewedLen:  cfg.Output.MaxReviewedLen,
		MinLen:          cfg.Output.MinLen,
	})

	var cls *classifier.Classifier
	if cfg.Classifier.Enabled && cfg.Classifier.Endpoint != "" {
		provider := classifier.NewHTTPClassifier(&classifier.HTTPConfig{
			Endpoint: cfg.Classifier.Endpoint,
			APIKey:   cfg.Classifier.APIKey,
			Model:    cfg.Classifier.Model,
			Timeout:  time.Duration(cfg.Classifier.TimeoutMs) * time.Millisecond,
		})
		cls = classifier.New(provider, &classifier.Config{
			HighRiskThreshold: cfg.Classifier.HighRiskThreshold,
			MaxInputChars:     cfg.Classifier.MaxInputChars,
			MaxTokens:         cfg.Classifier.MaxTokens,
		})
	}

	return pipeline.New(san, cls, spot, val, &pipeline.Config{
		AutoBlockThreshold: cfg.Security.AutoBlockThreshold,
		ClassifySkipBelow:  cfg.Security.ClassifySkipBelow,
		ClassifyForceAbove: cfg.Security.ClassifyForceAbove,
		SanitizerWeight:    cfg.Security.SanitizerWeight,
		ClassifierWeight:   cfg.Security.ClassifierWeight,
	})
}

// InitStore initializes the database store.
func (a *App) InitStore(ctx context.Context) error {
	dbPath := a.Config.GetDatabasePath()
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	a.Store = store
	return nil
}

// Close closes the application resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Format     string
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mailgate",
		Short: "Email Content Security Gate",
		Long: `Mailgate is a local-first CLI tool that gates untrusted email content
on its way into and out of an automated reply system.

Inbound email passes through a sanitizer, an optional injection
classifier and a spotlighting prompt builder; generated replies pass
through an output validator. Every check is recorded locally.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("MAILGATE_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(
		NewCheckCmd(),
		NewOutputCmd(),
		NewLogsCmd(),
		NewShowCmd(),
		NewStatsCmd(),
		NewWatchCmd(),
		NewStatusCmd(),
		NewConfigCmd(),
		NewRetentionCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Always skip the stdout logger since we are running in a CLI context
	// with our own TUI.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("mailgate", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		if globalFlags.ConfigPath != "" {
			return nil, ErrConfig("failed to load config", err)
		}
		// Use defaults if config not found
		cfg = config.Default()
	}

	// Override with flags
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	case "jsonl":
		return tui.FormatJSONL
	case "csv":
		return tui.FormatCSV
	default:
		return tui.FormatTable
	}
}
