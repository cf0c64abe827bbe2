package tui

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVPresenter renders output as CSV.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderStatus renders the guard status as CSV.
func (p *CSVPresenter) RenderStatus(status *StatusView) error {
	p.writer.Write([]string{"ext", "state", "baseline", "current"})

	for _, ext := range status.Extensions {
		p.writer.Write([]string{
			ext.Ext,
			string(ext.State),
			ext.Baseline,
			ext.Current,
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderEvents renders a list of drift events as CSV.
func (p *CSVPresenter) RenderEvents(events []*EventView) error {
	p.writer.Write([]string{
		"id", "timestamp", "ext", "previous", "baseline", "action", "error",
	})

	for _, e := range events {
		p.writer.Write([]string{
			e.ID,
			FormatTime(e.Timestamp),
			e.Ext,
			e.Previous,
			e.Baseline,
			e.Action,
			e.Error,
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderBaselines renders the guarded extension baselines as CSV.
func (p *CSVPresenter) RenderBaselines(baselines []*BaselineView) error {
	p.writer.Write([]string{"ext", "handler", "label"})

	for _, b := range baselines {
		p.writer.Write([]string{b.Ext, b.Handler, b.Label})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderCandidates renders candidate handlers as CSV.
func (p *CSVPresenter) RenderCandidates(candidates *CandidatesView) error {
	p.writer.Write([]string{"ext", "handler", "label", "current"})

	for _, c := range candidates.Handlers {
		current := "false"
		if c.Handler == candidates.Current {
			current = "true"
		}
		p.writer.Write([]string{candidates.Ext, c.Handler, c.Label, current})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderDiff renders a diff view as plain text; diffs do not fit CSV.
func (p *CSVPresenter) RenderDiff(diff *DiffView) error {
	if !diff.Available {
		_, err := fmt.Fprintln(p.w, diff.Message)
		return err
	}
	_, err := fmt.Fprint(p.w, diff.Content)
	return err
}

// RenderConfig renders the configuration as CSV key/value pairs.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	p.writer.Write([]string{"key", "value"})
	p.writeConfigMap(config.Values, "")

	p.writer.Flush()
	return p.writer.Error()
}

func (p *CSVPresenter) writeConfigMap(m map[string]interface{}, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			p.writeConfigMap(v, fullKey)
		default:
			p.writer.Write([]string{fullKey, fmt.Sprintf("%v", v)})
		}
	}
}

// RenderError renders an error message as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error"})
	p.writer.Write([]string{err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a simple message.
func (p *CSVPresenter) RenderMessage(message string) error {
	_, err := fmt.Fprintln(p.w, message)
	return err
}

// Ensure CSVPresenter implements Presenter
var _ Presenter = (*CSVPresenter)(nil)
