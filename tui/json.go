package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderStatus renders the guard status as JSON.
func (p *JSONPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderEvents renders a list of drift events as JSON.
func (p *JSONPresenter) RenderEvents(events []*EventView) error {
	return p.encoder.Encode(events)
}

// RenderBaselines renders the guarded extension baselines as JSON.
func (p *JSONPresenter) RenderBaselines(baselines []*BaselineView) error {
	return p.encoder.Encode(baselines)
}

// RenderCandidates renders candidate handlers as JSON.
func (p *JSONPresenter) RenderCandidates(candidates *CandidatesView) error {
	return p.encoder.Encode(candidates)
}

// RenderDiff renders a diff view as JSON.
func (p *JSONPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
