// Package storage provides database storage interfaces and implementations.
package storage

import (
	"context"
	"time"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
)

// EventFilter provides filtering for event queries.
type EventFilter struct {
	// Ext restricts results to a single extension when non-zero.
	Ext assoc.Extension

	// Since restricts results to events at or after the given time.
	Since *time.Time

	// Actions restricts results to the given actions when non-empty.
	Actions []eventlog.Action

	// Limit caps the number of results. Zero or negative means no cap.
	Limit int
}

// Store defines the interface for persisting and querying drift events.
type Store interface {
	// SaveEvent persists a drift event.
	SaveEvent(ctx context.Context, event eventlog.Event) error

	// QueryEvents retrieves events matching the filter, newest first.
	QueryEvents(ctx context.Context, filter EventFilter) ([]eventlog.Event, error)

	// CountEvents returns the count of events matching the filter.
	CountEvents(ctx context.Context, filter EventFilter) (int, error)

	// CountEventsBefore returns the count of events older than the given time.
	CountEventsBefore(ctx context.Context, before time.Time) (int, error)

	// DeleteEventsBefore deletes events older than the given time and
	// returns the number of rows removed.
	DeleteEventsBefore(ctx context.Context, before time.Time) (int, error)

	// Info returns database statistics.
	Info(ctx context.Context) (*DatabaseInfo, error)

	// Init initializes the database schema.
	Init(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}

// DatabaseInfo contains information about the database.
type DatabaseInfo struct {
	Path        string
	SizeBytes   int64
	EventCount  int
	OldestEvent time.Time
	NewestEvent time.Time
}
