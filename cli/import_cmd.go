package cli

import (
	"context"
	"fmt"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/registry"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import baselines from explicit user choices",
		Long: `Import baselines from explicit user choices.

Scans the per-user FileExts tree for extensions the user has picked a
default program for, and guards each one with its current effective
handler. Extensions that are already guarded are left unchanged.`,
		Example: `  winassocguard import
  winassocguard import --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			exts, err := registry.UserChoiceExtensions()
			if err != nil {
				return ErrRegistry("failed to enumerate user choices", err)
			}

			guarded := make(map[string]bool, len(app.Config.Extensions))
			for _, entry := range app.Config.Extensions {
				guarded[entry.Ext] = true
			}

			reader := registry.NewReader()
			extensions := app.Config.Extensions
			added := 0

			for _, ext := range exts {
				if guarded[ext.String()] {
					continue
				}

				current, err := reader.CurrentHandler(ctx, ext)
				if err != nil {
					log.Warnf("import skipped %s: %v", ext, err)
					continue
				}

				if dryRun {
					_ = app.Presenter.RenderMessage(fmt.Sprintf("Would guard %s -> %s", ext, current))
					added++
					continue
				}

				extensions = append(extensions, config.ExtensionConfig{
					Ext:     ext.String(),
					Handler: current.String(),
					Label:   registry.HandlerLabel(current),
				})
				added++
			}

			if added == 0 {
				return app.Presenter.RenderMessage("No new user choices to import.")
			}

			if dryRun {
				return app.Presenter.RenderMessage(fmt.Sprintf("Would import %d extension(s).", added))
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}
			if err := manager.SaveExtensions(extensions); err != nil {
				return ErrConfig("failed to save config", err)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("Imported %d extension(s).", added))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without saving")

	return cmd
}
