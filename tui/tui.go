// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatJSONL is newline-delimited JSON format.
	FormatJSONL Format = "jsonl"
	// FormatCSV is CSV format.
	FormatCSV Format = "csv"
)

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderStatus renders the guard status.
	RenderStatus(status *StatusView) error

	// RenderEvents renders a list of drift events.
	RenderEvents(events []*EventView) error

	// RenderBaselines renders the guarded extension baselines.
	RenderBaselines(baselines []*BaselineView) error

	// RenderCandidates renders candidate handlers for an extension.
	RenderCandidates(candidates *CandidatesView) error

	// RenderDiff renders a baseline-vs-current diff.
	RenderDiff(diff *DiffView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatJSONL:
		return NewJSONLPresenter(opts)
	case FormatCSV:
		return NewCSVPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
