package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRetentionCmd creates the retention command.
func NewRetentionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retention",
		Short: "Manage event retention",
		Long: `Manage event retention.

Commands for managing the stored drift event history, including
cleaning up events older than the configured retention period.`,
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
		Short: "Delete events older than retention policy",
		Long: `Delete events older than retention policy.

Removes drift events older than the configured retention_days setting.`,
		Example: `  winassocguard retention cleanup
  winassocguard retention cleanup --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer app.Close()

			days := app.Config.Storage.RetentionDays
			if days == 0 {
				return app.Presenter.RenderMessage("Retention policy disabled (retention_days=0).")
			}

			cutoff := time.Now().AddDate(0, 0, -days)

			if dryRun {
				count, err := app.Store.CountEventsBefore(ctx, cutoff)
				if err != nil {
					return err
				}
				return app.Presenter.RenderMessage(fmt.Sprintf(
					"Would delete %d events older than %s (%d days)",
					count, cutoff.Format(time.RFC3339), days))
			}

			deleted, err := app.Store.DeleteEventsBefore(ctx, cutoff)
			if err != nil {
				return err
			}

			return app.Presenter.RenderMessage(fmt.Sprintf(
				"Deleted %d events older than %d days", deleted, days))
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
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			days := app.Config.Storage.RetentionDays

			fmt.Fprintf(out, "Retention Policy:\n")
			if days == 0 {
				fmt.Fprintf(out, "  Status:          Disabled\n")
				fmt.Fprintf(out, "  Retention Days:  Unlimited\n")
				return nil
			}

			fmt.Fprintf(out, "  Status:          Enabled\n")
			fmt.Fprintf(out, "  Retention Days:  %d\n", days)

			cutoff := time.Now().AddDate(0, 0, -days)
			fmt.Fprintf(out, "  Cutoff Date:     %s\n", cutoff.Format("2006-01-02 15:04:05"))

			count, err := app.Store.CountEventsBefore(ctx, cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  Events to Clean: %d\n", count)

			return nil
		},
	}

	return cmd
}
