package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/registry"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewCandidatesCmd creates the candidates command.
func NewCandidatesCmd() *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "candidates <ext>",
		Short: "List handlers registered for an extension",
		Long: `List handlers registered for an extension.

Gathers ProgIDs from the effective handler chain, OpenWithProgids,
OpenWithList, and application SupportedTypes declarations. Useful for
choosing a baseline handler to pass to 'add --handler'.`,
		Example: `  winassocguard candidates .pdf`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			ext := assoc.NormalizeExt(args[0])
			if !ext.Valid() {
				return fmt.Errorf("invalid extension: %s", args[0])
			}

			handlers, err := registry.CandidateHandlers(ext, limit)
			if err != nil {
				return ErrRegistry(fmt.Sprintf("failed to enumerate candidates for %s", ext), err)
			}

			view := &tui.CandidatesView{Ext: ext.String()}

			if current, err := registry.NewReader().CurrentHandler(ctx, ext); err == nil {
				view.Current = current.String()
			}

			for _, h := range handlers {
				view.Handlers = append(view.Handlers, tui.CandidateView{
					Handler: h.String(),
					Label:   registry.HandlerLabel(h),
				})
			}

			return app.Presenter.RenderCandidates(view)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", registry.DefaultCandidateLimit, "maximum candidates")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
