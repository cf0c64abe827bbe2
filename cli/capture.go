package cli

import (
	"context"
	"fmt"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/registry"
)

// NewCaptureCmd creates the capture command.
func NewCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Re-capture baselines from the current registry state",
		Long: `Re-capture baselines from the current registry state.

For every guarded extension, replaces the stored baseline with the
effective handler currently registered. Extensions whose handler
cannot be read keep their existing baseline.`,
		Example: `  winassocguard capture`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			if len(app.Config.Extensions) == 0 {
				return app.Presenter.RenderMessage("No extensions are guarded.")
			}

			reader := registry.NewReader()
			extensions := app.Config.Extensions
			updated := 0

			for i, entry := range extensions {
				current, err := reader.CurrentHandler(ctx, assoc.Extension(entry.Ext))
				if err != nil {
					log.Warnf("capture skipped %s: %v", entry.Ext, err)
					continue
				}
				if current.String() == entry.Handler {
					continue
				}

				extensions[i].Handler = current.String()
				extensions[i].Label = registry.HandlerLabel(current)
				updated++
			}

			if updated == 0 {
				return app.Presenter.RenderMessage("All baselines already match the current state.")
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}
			if err := manager.SaveExtensions(extensions); err != nil {
				return ErrConfig("failed to save config", err)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("Captured %d new baseline(s).", updated))
		},
	}

	return cmd
}
