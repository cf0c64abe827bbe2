package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "remove <ext>...",
		Short: "Stop guarding extensions",
		Long: `Stop guarding extensions.

Removes the named extensions from the baseline list. The current
registry state is left untouched.`,
		Example: `  winassocguard remove .pdf
  winassocguard remove --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("name extensions to remove or pass --all")
			}

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, "table")

			var remaining []config.ExtensionConfig
			removed := 0

			if all {
				removed = len(app.Config.Extensions)
			} else {
				wanted := make(map[string]bool, len(args))
				for _, arg := range args {
					ext := assoc.NormalizeExt(arg)
					if !ext.Valid() {
						return fmt.Errorf("invalid extension: %s", arg)
					}
					wanted[ext.String()] = true
				}

				for _, entry := range app.Config.Extensions {
					if wanted[entry.Ext] {
						removed++
						continue
					}
					remaining = append(remaining, entry)
				}

				if removed == 0 {
					return app.Presenter.RenderMessage("No matching guarded extensions.")
				}
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}
			if err := manager.SaveExtensions(remaining); err != nil {
				return ErrConfig("failed to save config", err)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("Removed %d guarded extension(s).", removed))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "remove every guarded extension")

	return cmd
}
