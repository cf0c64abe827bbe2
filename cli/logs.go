package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
	"github.com/sherlock-488/WinAssocGuard/storage"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewLogsCmd creates the logs command.
func NewLogsCmd() *cobra.Command {
	var (
		ext    string
		since  string
		action string
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display recorded drift events",
		Long: `Display recorded drift events.

Shows drift and restore events newest first. Use filters to narrow
down the results.`,
		Example: `  winassocguard logs
  winassocguard logs --ext .pdf
  winassocguard logs --since 24h
  winassocguard logs --action restore_failed --format jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Errorf("failed to close app: %v", err)
				}
			}()

			filter := storage.EventFilter{Limit: limit}

			if ext != "" {
				normalized := assoc.NormalizeExt(ext)
				if !normalized.Valid() {
					return fmt.Errorf("invalid extension: %s", ext)
				}
				filter.Ext = normalized
			}

			if since != "" {
				sinceTime, err := parsePast(since)
				if err != nil {
					return fmt.Errorf("invalid --since value %q: %w", since, err)
				}
				filter.Since = &sinceTime
			}

			if action != "" {
				parsed, ok := eventlog.ParseAction(action)
				if !ok {
					return fmt.Errorf("invalid action: %s (must be none, restored, or restore_failed)", action)
				}
				filter.Actions = []eventlog.Action{parsed}
			}

			events, err := app.Store.QueryEvents(ctx, filter)
			if err != nil {
				return err
			}

			if len(events) == 0 {
				return app.Presenter.RenderMessage("No events found.")
			}

			views := make([]*tui.EventView, len(events))
			for i, e := range events {
				views[i] = eventToView(e)
			}
			return app.Presenter.RenderEvents(views)
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "", "filter by extension")
	cmd.Flags().StringVar(&since, "since", "", "show events since (e.g. \"1h\", \"2d\", \"2026-01-15\")")
	cmd.Flags().StringVar(&action, "action", "", "filter by action: none, restored, restore_failed")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum events")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

// parsePast parses a duration like "1h" or "2d", or a date, into a
// point in the past.
func parsePast(s string) (time.Time, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return time.Now().Add(-d), nil
	}

	// Day and week suffixes are not understood by time.ParseDuration.
	if len(s) > 1 {
		unit := s[len(s)-1]
		var perUnit time.Duration
		switch unit {
		case 'd':
			perUnit = 24 * time.Hour
		case 'w':
			perUnit = 7 * 24 * time.Hour
		}
		if perUnit > 0 {
			var n int
			if _, err := fmt.Sscanf(s[:len(s)-1], "%d", &n); err == nil {
				return time.Now().Add(-time.Duration(n) * perUnit), nil
			}
		}
	}

	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("not a duration or date")
}

// eventToView converts an event to a view model.
func eventToView(e eventlog.Event) *tui.EventView {
	return &tui.EventView{
		ID:        e.ID.String(),
		ShortID:   tui.FormatShortID(e.ID.String()),
		Timestamp: e.Timestamp,
		Ext:       e.Ext.String(),
		Previous:  e.Previous.String(),
		Baseline:  e.Baseline.String(),
		Action:    string(e.Action),
		Error:     e.Error,
	}
}
