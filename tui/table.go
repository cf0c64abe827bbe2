package tui

import (
	"fmt"
	"io"
	"strings"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
}

// lineWriter prints table lines while remembering the first failed
// write. Render methods format unconditionally and surface the
// failure once at the end instead of checking every Fprintf.
type lineWriter struct {
	out io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err == nil {
		_, lw.err = fmt.Fprintf(lw.out, format, args...)
	}
}

func (lw *lineWriter) println(args ...any) {
	if lw.err == nil {
		_, lw.err = fmt.Fprintln(lw.out, args...)
	}
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = detectRenderWidth()
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
	}
}

// RenderStatus renders the guard status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	tw := &lineWriter{out: p.w}

	tw.printf("%s\n\n", p.color.Header("winassocguard "+status.Version))

	// Guard section
	tw.printf("%s\n", p.color.Header("Guard"))
	tw.printf("  %-14s %s\n", "Monitoring", formatEnabled(status.Guard.Enabled))
	tw.printf("  %-14s %s\n", "Auto-restore", formatEnabled(status.Guard.AutoRestore))
	tw.printf("  %-14s %s\n", "Interval", status.Guard.Interval.String())
	tw.printf("  %-14s %s\n", "Notifications", formatEnabled(status.Guard.Notifications))
	if status.Guard.Autostart != "" {
		tw.printf("  %-14s %s\n", "Autostart", status.Guard.Autostart)
	}
	tw.println()

	// Extensions section
	tw.printf("%s\n", p.color.Header("Extensions"))
	if len(status.Extensions) == 0 {
		tw.println("  No extensions are guarded.")
	}
	for _, ext := range status.Extensions {
		baseline := ext.Baseline
		if ext.BaselineLabel != "" {
			baseline = fmt.Sprintf("%s (%s)", ext.BaselineLabel, ext.Baseline)
		}
		tw.printf("  %-10s %-8s %s\n",
			p.color.Ext(ext.Ext), p.color.State(ext.State), baseline)
		if ext.State == ExtDrift && ext.Current != "" {
			tw.printf("  %-10s %-8s %s\n", "", "", p.color.Dim("current: "+ext.Current))
		}
		if ext.Detail != "" {
			tw.printf("  %-10s %-8s %s\n", "", "", p.color.Dim(ext.Detail))
		}
	}
	tw.println()

	// Database section
	tw.printf("%s\n", p.color.Header("Database"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Database.Location))
	tw.printf("  %-14s %s\n", "Size", status.Database.SizeHuman)
	tw.printf("  %-14s %s\n", "Events", p.color.Number(FormatNumber(status.Database.EventCount)))
	if !status.Database.OldestEvent.IsZero() {
		tw.printf("  %-14s %s\n", "Oldest", FormatTime(status.Database.OldestEvent))
		tw.printf("  %-14s %s\n", "Latest", FormatTime(status.Database.NewestEvent))
	}
	tw.println()

	// Config section
	tw.printf("%s\n", p.color.Header("Config"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Config.Location))
	tw.printf("  %-14s %d days\n", "Retention", status.Config.RetentionDays)
	if status.Config.EventsToClean > 0 {
		tw.printf("  %-14s %d events older than %s\n", "Cleanable",
			status.Config.EventsToClean, FormatTime(status.Config.RetentionCutoff))
	}

	return tw.err
}

// RenderEvents renders a list of drift events.
func (p *TablePresenter) RenderEvents(events []*EventView) error {
	tw := &lineWriter{out: p.w}

	if len(events) == 0 {
		tw.println("No events found.")
		return tw.err
	}

	tw.printf("Events (%d)\n", len(events))
	tw.println(HorizontalLine(p.termWidth))

	for _, e := range events {
		action := FormatAction(e.Action)
		switch e.Action {
		case "restored":
			action = p.color.Success(action)
		case "restore_failed":
			action = p.color.Error(action)
		default:
			action = p.color.Warning(action)
		}

		tw.printf("%s  %-10s %s\n",
			FormatTime(e.Timestamp), p.color.Ext(e.Ext), action)
		tw.printf("    %s -> %s  %s\n",
			e.Previous, e.Baseline, p.color.Dim(e.ShortID))
		if e.Error != "" {
			tw.printf("    %s\n", p.color.Error(e.Error))
		}
	}

	return tw.err
}

// RenderBaselines renders the guarded extension baselines.
func (p *TablePresenter) RenderBaselines(baselines []*BaselineView) error {
	tw := &lineWriter{out: p.w}

	if len(baselines) == 0 {
		tw.println("No extensions are guarded.")
		return tw.err
	}

	tw.printf("Guarded extensions (%d)\n", len(baselines))
	tw.println(HorizontalLine(p.termWidth))

	for _, b := range baselines {
		handler := b.Handler
		if b.Label != "" {
			handler = fmt.Sprintf("%s (%s)", b.Label, b.Handler)
		}
		tw.printf("  %-10s %s\n", p.color.Ext(b.Ext), handler)
	}

	return tw.err
}

// RenderCandidates renders candidate handlers for an extension.
func (p *TablePresenter) RenderCandidates(candidates *CandidatesView) error {
	tw := &lineWriter{out: p.w}

	if len(candidates.Handlers) == 0 {
		tw.printf("No candidate handlers found for %s.\n", candidates.Ext)
		return tw.err
	}

	tw.printf("Candidate handlers for %s\n", p.color.Ext(candidates.Ext))
	tw.println(HorizontalLine(p.termWidth))

	for _, c := range candidates.Handlers {
		marker := "  "
		if c.Handler == candidates.Current {
			marker = p.color.Success("* ")
		}
		label := c.Label
		if label == "" || label == c.Handler {
			tw.printf("%s%s\n", marker, c.Handler)
			continue
		}
		tw.printf("%s%-40s %s\n", marker, c.Handler, p.color.Dim(label))
	}

	if candidates.Current != "" {
		tw.println()
		tw.println(p.color.Dim("* current handler"))
	}

	return tw.err
}

// RenderDiff renders a baseline-vs-current diff.
func (p *TablePresenter) RenderDiff(diff *DiffView) error {
	tw := &lineWriter{out: p.w}

	if !diff.Available {
		tw.println(diff.Message)
		return tw.err
	}

	for _, line := range strings.Split(strings.TrimRight(diff.Content, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			tw.println(p.color.DiffHeader(line))
		case strings.HasPrefix(line, "+"):
			tw.println(p.color.DiffAdd(line))
		case strings.HasPrefix(line, "-"):
			tw.println(p.color.DiffRemove(line))
		case strings.HasPrefix(line, "@@"):
			tw.println(p.color.DiffHeader(line))
		default:
			tw.println(line)
		}
	}

	return tw.err
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &lineWriter{out: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	p.renderConfigMap(tw, config.Values, "")

	return tw.err
}

func (p *TablePresenter) renderConfigMap(tw *lineWriter, m map[string]interface{}, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			p.renderConfigMap(tw, v, fullKey)
		default:
			tw.printf("  %-30s %v\n", fullKey, v)
		}
	}
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	_, werr := fmt.Fprintf(p.w, "%s %s\n", p.color.Error("Error:"), err.Error())
	return werr
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	_, err := fmt.Fprintln(p.w, message)
	return err
}

func formatEnabled(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)
