package cli

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/registry"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show a unified diff of baselines against the live registry",
		Long: `Show a unified diff of baselines against the live registry.

Renders the guarded extension list twice, once with baseline handlers
and once with the handlers currently in effect, as a unified diff.
No output lines change when there is no drift.`,
		Example: `  winassocguard diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			entries := app.Baselines.Snapshot()
			if len(entries) == 0 {
				return app.Presenter.RenderDiff(&tui.DiffView{
					Available: false,
					Message:   "No extensions are guarded.",
				})
			}

			reader := registry.NewReader()
			baselineLines := make([]string, len(entries))
			currentLines := make([]string, len(entries))

			for i, entry := range entries {
				baselineLines[i] = fmt.Sprintf("%s %s\n", entry.Ext, entry.Handler)

				current, err := reader.CurrentHandler(ctx, entry.Ext)
				switch {
				case assoc.IsNotFound(err):
					currentLines[i] = fmt.Sprintf("%s <unset>\n", entry.Ext)
				case err != nil:
					currentLines[i] = fmt.Sprintf("%s <unreadable: %v>\n", entry.Ext, err)
				default:
					currentLines[i] = fmt.Sprintf("%s %s\n", entry.Ext, current)
				}
			}

			content, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        baselineLines,
				B:        currentLines,
				FromFile: "baseline",
				ToFile:   "current",
				Context:  3,
			})
			if err != nil {
				return err
			}

			if content == "" {
				return app.Presenter.RenderDiff(&tui.DiffView{
					Available: false,
					Message:   "No drift detected.",
				})
			}

			return app.Presenter.RenderDiff(&tui.DiffView{
				Available: true,
				Content:   content,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}
