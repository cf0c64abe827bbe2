package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/internal/version"
	"github.com/sherlock-488/WinAssocGuard/registry"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show guard status and per-extension drift state",
		Long: `Show guard status and per-extension drift state.

Displays the guard settings, the current handler for every guarded
extension compared against its baseline, and database information.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			view := &tui.StatusView{
				Version: version.Version,
				Guard: tui.GuardStatusView{
					Enabled:       app.Config.Guard.Enabled,
					AutoRestore:   app.Config.Guard.AutoRestore,
					Interval:      app.Config.Guard.Interval,
					Notifications: app.Config.Guard.Notifications,
					Autostart:     autostartState(),
				},
			}

			// Per-extension state
			reader := registry.NewReader()
			for _, entry := range app.Baselines.Snapshot() {
				extView := tui.ExtensionStatusView{
					Ext:           entry.Ext.String(),
					Baseline:      entry.Handler.String(),
					BaselineLabel: entry.Label,
				}

				current, err := reader.CurrentHandler(ctx, entry.Ext)
				switch {
				case assoc.IsNotFound(err):
					extView.State = tui.ExtUnset
				case err != nil:
					extView.State = tui.ExtError
					extView.Detail = err.Error()
				case current == entry.Handler:
					extView.State = tui.ExtOK
					extView.Current = current.String()
				default:
					extView.State = tui.ExtDrift
					extView.Current = current.String()
				}

				view.Extensions = append(view.Extensions, extView)
			}

			// Database info
			view.Database = tui.DatabaseView{
				Location: app.Config.GetDatabasePath(),
			}

			if err := app.InitStore(ctx); err == nil {
				defer app.Close()
				if info, err := app.Store.Info(ctx); err == nil {
					view.Database.SizeBytes = info.SizeBytes
					view.Database.SizeHuman = tui.FormatBytes(info.SizeBytes)
					view.Database.EventCount = info.EventCount
					view.Database.OldestEvent = info.OldestEvent
					view.Database.NewestEvent = info.NewestEvent
				}
			}

			// Config info
			view.Config = tui.ConfigStatusView{
				Location:      app.ConfigFilePath(),
				RetentionDays: app.Config.Storage.RetentionDays,
			}

			if app.Config.Storage.RetentionDays > 0 && app.Store != nil {
				cutoff := time.Now().AddDate(0, 0, -app.Config.Storage.RetentionDays)
				view.Config.RetentionCutoff = cutoff
				if count, err := app.Store.CountEventsBefore(ctx, cutoff); err == nil {
					view.Config.EventsToClean = count
				}
			}

			return app.Presenter.RenderStatus(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

// autostartState reports the Run key state for display.
func autostartState() string {
	enabled, err := registry.AutostartEnabled()
	if err != nil {
		return "unknown"
	}
	if enabled {
		return "enabled"
	}
	return "disabled"
}
