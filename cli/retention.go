package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mailgate/mailgate/core/retention"
)

// NewRetentionCmd creates the retention command.
func NewRetentionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Manage check record retention",
		Long: `Manage check record retention.

Commands for managing the retention policy including cleaning up old
check records based on the configured retention period.`,
	}

	cmd.AddCommand(newRetentionCleanupCmd())
	cmd.AddCommand(newRetentionStatusCmd())

	return cmd
}

// newRetentionCleanupCmd creates the retention cleanup subcommand.
func newRetentionCleanupCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete check records older than retention policy",
		Long: `Delete check records older than retention policy.

Removes check records older than the configured retention_days setting.`,
		Example: `  mailgate retention cleanup
  mailgate retention cleanup --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			// Initialize store
			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer app.Close()

			policy := retention.NewPolicy(app.Config.Storage.RetentionDays)
			if !policy.IsEnabled() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Retention policy disabled (retention_days=0)")
				return nil
			}

			cutoff := policy.CutoffTime()

			if dryRun {
				// Show what would be deleted
				count, err := app.Store.CountChecksBefore(ctx, cutoff)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Would delete %d checks older than %s (%d days)\n",
					count, cutoff.Format(time.RFC3339), policy.RetentionDays)
				return nil
			}

			deleted, err := app.Store.DeleteChecksBefore(ctx, cutoff)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d checks older than %d days\n", deleted, policy.RetentionDays)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")

	return cmd
}

// newRetentionStatusCmd creates the retention status subcommand.
func newRetentionStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show retention policy status",
		Long: `Show retention policy status.

Displays the current retention configuration and statistics about
check records that would be affected by cleanup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}

			// Initialize store
			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer app.Close()

			policy := retention.NewPolicy(app.Config.Storage.RetentionDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Retention Policy:\n")
			if !policy.IsEnabled() {
				fmt.Fprintf(cmd.OutOrStdout(), "  Status:          Disabled\n")
				fmt.Fprintf(cmd.OutOrStdout(), "  Retention Days:  Unlimited\n")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  Status:          Enabled\n")
				fmt.Fprintf(cmd.OutOrStdout(), "  Retention Days:  %d\n", policy.RetentionDays)

				cutoff := policy.CutoffTime()
				fmt.Fprintf(cmd.OutOrStdout(), "  Cutoff Date:     %s\n", cutoff.Format("2006-01-02 15:04:05"))

				// Count checks that would be deleted
				count, err := app.Store.CountChecksBefore(ctx, cutoff)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  Checks to Clean: %d\n", count)
			}

			return nil
		},
	}

	return cmd
}
