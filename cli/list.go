package cli

import (
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List guarded extensions and their baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			entries := app.Baselines.Snapshot()
			views := make([]*tui.BaselineView, len(entries))
			for i, entry := range entries {
				views[i] = &tui.BaselineView{
					Ext:     entry.Ext.String(),
					Handler: entry.Handler.String(),
					Label:   entry.Label,
				}
			}

			return app.Presenter.RenderBaselines(views)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
