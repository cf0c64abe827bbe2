package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id               TEXT PRIMARY KEY,
	ts               INTEGER NOT NULL,
	extension        TEXT NOT NULL,
	previous_handler TEXT NOT NULL,
	baseline_handler TEXT NOT NULL,
	action           TEXT NOT NULL,
	error_message    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events (ts);
CREATE INDEX IF NOT EXISTS idx_events_extension ON events (extension);
`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Use _pragma=foreign_keys(1) for modernc.org/sqlite
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Init initializes the database schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// SaveEvent persists a drift event.
func (s *SQLiteStore) SaveEvent(ctx context.Context, event eventlog.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, ts, extension, previous_handler, baseline_handler, action, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID.String(),
		event.Timestamp.UnixNano(),
		event.Ext.String(),
		event.Previous.String(),
		event.Baseline.String(),
		string(event.Action),
		event.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

// QueryEvents retrieves events matching the filter, newest first.
func (s *SQLiteStore) QueryEvents(ctx context.Context, filter EventFilter) ([]eventlog.Event, error) {
	where, args := buildEventWhere(filter)

	query := `SELECT id, ts, extension, previous_handler, baseline_handler, action, error_message FROM events` +
		where + ` ORDER BY ts DESC, id DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var result []eventlog.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return result, nil
}

// CountEvents returns the count of events matching the filter.
func (s *SQLiteStore) CountEvents(ctx context.Context, filter EventFilter) (int, error) {
	where, args := buildEventWhere(filter)

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// CountEventsBefore returns the count of events older than the given time.
func (s *SQLiteStore) CountEventsBefore(ctx context.Context, before time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE ts < ?`, before.UnixNano()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// DeleteEventsBefore deletes events older than the given time.
func (s *SQLiteStore) DeleteEventsBefore(ctx context.Context, before time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE ts < ?`, before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted events: %w", err)
	}
	return int(affected), nil
}

// Info returns summary information about the database.
func (s *SQLiteStore) Info(ctx context.Context) (*DatabaseInfo, error) {
	info := &DatabaseInfo{Path: s.path}

	if stat, err := os.Stat(s.path); err == nil {
		info.SizeBytes = stat.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&info.EventCount); err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	if info.EventCount > 0 {
		var oldest, newest int64
		err := s.db.QueryRowContext(ctx, `SELECT MIN(ts), MAX(ts) FROM events`).Scan(&oldest, &newest)
		if err != nil {
			return nil, fmt.Errorf("failed to query event range: %w", err)
		}
		info.OldestEvent = time.Unix(0, oldest).UTC()
		info.NewestEvent = time.Unix(0, newest).UTC()
	}

	return info, nil
}

func buildEventWhere(filter EventFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if !filter.Ext.IsZero() {
		clauses = append(clauses, "extension = ?")
		args = append(args, filter.Ext.String())
	}
	if filter.Since != nil {
		clauses = append(clauses, "ts >= ?")
		args = append(args, filter.Since.UnixNano())
	}
	if len(filter.Actions) > 0 {
		placeholders := make([]string, len(filter.Actions))
		for i, action := range filter.Actions {
			placeholders[i] = "?"
			args = append(args, string(action))
		}
		clauses = append(clauses, "action IN ("+strings.Join(placeholders, ", ")+")")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanEvent(rows *sql.Rows) (eventlog.Event, error) {
	var (
		id       string
		ts       int64
		ext      string
		previous string
		baseline string
		action   string
		errMsg   string
	)
	if err := rows.Scan(&id, &ts, &ext, &previous, &baseline, &action, &errMsg); err != nil {
		return eventlog.Event{}, fmt.Errorf("failed to scan event: %w", err)
	}

	eventID, err := uuid.Parse(id)
	if err != nil {
		return eventlog.Event{}, fmt.Errorf("failed to parse event id: %w", err)
	}

	return eventlog.Event{
		ID:        eventID,
		Timestamp: time.Unix(0, ts).UTC(),
		Ext:       assoc.Extension(ext),
		Previous:  assoc.HandlerID(previous),
		Baseline:  assoc.HandlerID(baseline),
		Action:    eventlog.Action(action),
		Error:     errMsg,
	}, nil
}
