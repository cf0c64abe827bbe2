package tui

import (
	"encoding/json"
	"io"
)

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	// No indentation for JSONL
	return &JSONLPresenter{
		w:       opts.Writer,
		encoder: json.NewEncoder(opts.Writer),
	}
}

// RenderStatus renders the guard status as JSONL.
func (p *JSONLPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderEvents renders a list of drift events as JSONL (one per line).
func (p *JSONLPresenter) RenderEvents(events []*EventView) error {
	for _, e := range events {
		if err := p.encoder.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// RenderBaselines renders baselines as JSONL (one per line).
func (p *JSONLPresenter) RenderBaselines(baselines []*BaselineView) error {
	for _, b := range baselines {
		if err := p.encoder.Encode(b); err != nil {
			return err
		}
	}
	return nil
}

// RenderCandidates renders candidate handlers as JSONL (one per line).
func (p *JSONLPresenter) RenderCandidates(candidates *CandidatesView) error {
	for _, c := range candidates.Handlers {
		if err := p.encoder.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

// RenderDiff renders a diff view as JSONL.
func (p *JSONLPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderConfig renders the configuration as JSONL.
func (p *JSONLPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error message as JSONL.
func (p *JSONLPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSONL.
func (p *JSONLPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONLPresenter implements Presenter
var _ Presenter = (*JSONLPresenter)(nil)
