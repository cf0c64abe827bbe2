// Package eventlog provides the monitor event model and the bounded
// in-memory event log.
package eventlog

import (
	"time"

	"github.com/google/uuid"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// Action is the action the monitor took for a detected condition.
type Action string

const (
	// ActionNone records drift observed in report-only mode.
	ActionNone Action = "none"
	// ActionRestored records a successful restore to baseline.
	ActionRestored Action = "restored"
	// ActionRestoreFailed records a failed restore or a failed read.
	ActionRestoreFailed Action = "restore_failed"
)

// String returns the string representation of an Action.
func (a Action) String() string {
	return string(a)
}

// IsValid returns true if the Action is a known value.
func (a Action) IsValid() bool {
	switch a {
	case ActionNone, ActionRestored, ActionRestoreFailed:
		return true
	default:
		return false
	}
}

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	return a, a.IsValid()
}

// Event is an immutable record of one monitor decision for one
// extension. Previous is the handler as observed before the decision;
// Baseline is the stored baseline it was compared against.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Ext       assoc.Extension `json:"extension"`
	Previous  assoc.HandlerID `json:"previous_handler,omitempty"`
	Baseline  assoc.HandlerID `json:"baseline_handler,omitempty"`
	Action    Action          `json:"action"`
	Error     string          `json:"error,omitempty"`
}

// New creates an Event with a generated ID and the current UTC time.
func New(ext assoc.Extension, previous, baseline assoc.HandlerID, action Action) Event {
	return Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Ext:       ext,
		Previous:  previous,
		Baseline:  baseline,
		Action:    action,
	}
}

// WithError returns a copy of the event carrying an error detail.
func (e Event) WithError(err error) Event {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
