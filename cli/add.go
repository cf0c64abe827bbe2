package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/registry"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var (
		handler string
		label   string
	)

	cmd := &cobra.Command{
		Use:   "add <ext>...",
		Short: "Guard extensions with a baseline handler",
		Long: `Guard extensions with a baseline handler.

When --handler is omitted, the current effective handler for each
extension is captured as the baseline. When --handler is given, it is
verified against HKCR and used for all named extensions.`,
		Example: `  winassocguard add .pdf
  winassocguard add .pdf --handler Acrobat.Document.DC
  winassocguard add .htm .html --handler ChromeHTML --label "Google Chrome"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			target := assoc.NormalizeHandler(handler)
			if !target.IsZero() && !registry.ValidHandler(target) {
				return ErrRegistry(fmt.Sprintf("handler %s is not registered in HKCR", target), nil)
			}

			reader := registry.NewReader()
			extensions := app.Config.Extensions

			for _, arg := range args {
				ext := assoc.NormalizeExt(arg)
				if !ext.Valid() {
					return fmt.Errorf("invalid extension: %s", arg)
				}

				entry := config.ExtensionConfig{Ext: ext.String(), Label: label}

				if target.IsZero() {
					current, err := reader.CurrentHandler(ctx, ext)
					if err != nil {
						if assoc.IsNotFound(err) {
							return ErrRegistry(fmt.Sprintf("%s has no effective handler; pass --handler", ext), nil)
						}
						return ErrRegistry(fmt.Sprintf("failed to read handler for %s", ext), err)
					}
					entry.Handler = current.String()
				} else {
					entry.Handler = target.String()
				}

				if entry.Label == "" {
					entry.Label = registry.HandlerLabel(assoc.HandlerID(entry.Handler))
				}

				extensions = upsertExtension(extensions, entry)
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}
			if err := manager.SaveExtensions(extensions); err != nil {
				return ErrConfig("failed to save config", err)
			}

			for _, arg := range args {
				ext := assoc.NormalizeExt(arg)
				for _, e := range extensions {
					if e.Ext == ext.String() {
						_ = app.Presenter.RenderMessage(fmt.Sprintf("Guarding %s -> %s", e.Ext, e.Handler))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&handler, "handler", "", "baseline ProgID (default: capture the current handler)")
	cmd.Flags().StringVar(&label, "label", "", "display label for the handler")

	return cmd
}

// upsertExtension replaces an existing entry for the same extension or
// appends a new one, preserving list order.
func upsertExtension(extensions []config.ExtensionConfig, entry config.ExtensionConfig) []config.ExtensionConfig {
	for i, existing := range extensions {
		if existing.Ext == entry.Ext {
			extensions[i] = entry
			return extensions
		}
	}
	return append(extensions, entry)
}
