package cli

import (
	"context"
	"fmt"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
	"github.com/sherlock-488/WinAssocGuard/core/monitor"
	"github.com/sherlock-488/WinAssocGuard/registry"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewRestoreCmd creates the restore command.
func NewRestoreCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "restore [ext]...",
		Short: "Restore drifted extensions to their baselines now",
		Long: `Restore drifted extensions to their baselines now.

Runs one evaluation pass over the named extensions (all guarded
extensions when none are named) with restore forced on, regardless of
the auto_restore setting. Extensions already at their baseline are
left untouched.`,
		Example: `  winassocguard restore
  winassocguard restore .pdf .html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			if app.Baselines.Len() == 0 {
				return app.Presenter.RenderMessage("No extensions are guarded.")
			}

			var exts []assoc.Extension
			for _, arg := range args {
				ext := assoc.NormalizeExt(arg)
				if !ext.Valid() {
					return fmt.Errorf("invalid extension: %s", arg)
				}
				exts = append(exts, ext)
			}

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Errorf("failed to close app: %v", err)
				}
			}()

			settings := app.Config.MonitorSettings()
			mon := monitor.New(
				app.Baselines,
				registry.NewReader(),
				registry.NewRestorer(),
				eventlog.NewLog(eventlog.DefaultCapacity),
				func() monitor.Settings { return settings },
				monitor.WithSink(app.Store),
			)

			events := mon.RestoreNow(ctx, exts...)
			if len(events) == 0 {
				return app.Presenter.RenderMessage("All extensions already match their baselines.")
			}

			views := make([]*tui.EventView, len(events))
			failed := 0
			for i, e := range events {
				views[i] = eventToView(e)
				if e.Action == eventlog.ActionRestoreFailed {
					failed++
				}
			}

			if err := app.Presenter.RenderEvents(views); err != nil {
				return err
			}
			if failed > 0 {
				return ErrRegistry(fmt.Sprintf("%d extension(s) could not be restored", failed), nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
