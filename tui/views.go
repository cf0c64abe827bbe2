package tui

import (
	"time"
)

// StatusView represents the status output data.
type StatusView struct {
	Version    string
	Guard      GuardStatusView
	Extensions []ExtensionStatusView
	Database   DatabaseView
	Config     ConfigStatusView
}

// GuardStatusView represents the guard settings for display.
type GuardStatusView struct {
	Enabled       bool
	AutoRestore   bool
	Interval      time.Duration
	Notifications bool
	Autostart     string // "enabled", "disabled", or "unknown"
}

// ExtState represents the drift state of a guarded extension.
type ExtState string

const (
	// ExtOK means the effective handler matches the baseline.
	ExtOK ExtState = "ok"
	// ExtDrift means the effective handler differs from the baseline.
	ExtDrift ExtState = "drift"
	// ExtUnset means no effective handler is registered.
	ExtUnset ExtState = "unset"
	// ExtError means the effective handler could not be read.
	ExtError ExtState = "error"
)

// ExtensionStatusView represents one guarded extension's state.
type ExtensionStatusView struct {
	Ext           string
	Baseline      string
	BaselineLabel string
	Current       string
	State         ExtState
	Detail        string
}

// DatabaseView represents database information.
type DatabaseView struct {
	Location    string
	SizeBytes   int64
	SizeHuman   string
	EventCount  int
	OldestEvent time.Time
	NewestEvent time.Time
}

// ConfigStatusView represents configuration status.
type ConfigStatusView struct {
	Location        string
	RetentionDays   int
	EventsToClean   int       // Events that would be deleted by retention policy
	RetentionCutoff time.Time // The cutoff date for retention
}

// EventView represents a drift event for display.
type EventView struct {
	ID        string
	ShortID   string
	Timestamp time.Time
	Ext       string
	Previous  string
	Baseline  string
	Action    string
	Error     string
}

// BaselineView represents a guarded extension baseline for display.
type BaselineView struct {
	Ext     string
	Handler string
	Label   string
}

// CandidatesView represents candidate handlers for one extension.
type CandidatesView struct {
	Ext      string
	Current  string
	Handlers []CandidateView
}

// CandidateView represents a single candidate handler.
type CandidateView struct {
	Handler string
	Label   string
}

// DiffView represents a baseline-vs-current diff for display.
type DiffView struct {
	Content   string
	Available bool
	Message   string
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string
	Values   map[string]interface{}
}
