// Package monitor implements the drift monitor: the scheduled loop
// that compares live association state against stored baselines and
// restores the baseline when drift is detected.
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/safedep/dry/log"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
	"github.com/sherlock-488/WinAssocGuard/core/baseline"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
)

const (
	// MinInterval is the smallest allowed poll interval.
	MinInterval = time.Second
	// MaxInterval is the largest allowed poll interval.
	MaxInterval = 60 * time.Second
	// DefaultInterval is used when no interval is configured.
	DefaultInterval = 3 * time.Second
)

// Settings is the immutable per-tick configuration snapshot. The
// monitor re-reads it at every tick boundary, so flag or interval
// changes take effect on the next tick without torn reads mid-tick.
type Settings struct {
	Enabled       bool
	AutoRestore   bool
	Interval      time.Duration
	Notifications bool
}

// ClampedInterval returns the poll interval bounded to the allowed range.
func (s Settings) ClampedInterval() time.Duration {
	switch {
	case s.Interval <= 0:
		return DefaultInterval
	case s.Interval < MinInterval:
		return MinInterval
	case s.Interval > MaxInterval:
		return MaxInterval
	default:
		return s.Interval
	}
}

// Sink receives every appended event for durable storage. Sink errors
// are logged and never affect the monitor's decisions.
type Sink interface {
	SaveEvent(ctx context.Context, e eventlog.Event) error
}

// Monitor evaluates guarded extensions on a timer and, when allowed,
// restores drifted associations to their baseline.
type Monitor struct {
	baselines *baseline.Store
	reader    assoc.Reader
	restorer  assoc.Restorer
	events    *eventlog.Log
	settings  func() Settings
	sink      Sink
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithSink attaches a durable event sink.
func WithSink(sink Sink) Option {
	return func(m *Monitor) {
		m.sink = sink
	}
}

// New creates a Monitor. The settings provider is called once per tick
// to obtain a consistent configuration snapshot.
func New(baselines *baseline.Store, reader assoc.Reader, restorer assoc.Restorer, events *eventlog.Log, settings func() Settings, opts ...Option) *Monitor {
	m := &Monitor{
		baselines: baselines,
		reader:    reader,
		restorer:  restorer,
		events:    events,
		settings:  settings,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run drives the monitor until ctx is cancelled. Ticks never overlap:
// the next tick starts only after the previous one finished. Disabling
// the guard takes effect at the next tick boundary; an in-flight
// restore is never aborted mid-write.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		cfg := m.settings()
		if cfg.Enabled {
			m.tick(ctx, cfg)
		}

		timer := time.NewTimer(cfg.ClampedInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Tick runs a single evaluation cycle over all guarded extensions
// using the current settings snapshot. It does nothing when the guard
// is disabled.
func (m *Monitor) Tick(ctx context.Context) {
	cfg := m.settings()
	if !cfg.Enabled {
		return
	}
	m.tick(ctx, cfg)
}

// RestoreNow runs one evaluation pass with auto-restore forced on,
// restricted to the named extensions (none means all). It exists so
// user-initiated restores flow through the same state machine as
// scheduled ones. The returned events are the decisions of this pass.
func (m *Monitor) RestoreNow(ctx context.Context, exts ...assoc.Extension) []eventlog.Event {
	cfg := m.settings()
	cfg.AutoRestore = true

	wanted := make(map[assoc.Extension]bool, len(exts))
	for _, e := range exts {
		wanted[assoc.NormalizeExt(e.String())] = true
	}

	var out []eventlog.Event
	for _, entry := range m.baselines.Snapshot() {
		if len(wanted) > 0 && !wanted[entry.Ext] {
			continue
		}
		if e, emitted := m.evaluate(ctx, cfg, entry); emitted {
			out = append(out, e)
		}
	}
	return out
}

func (m *Monitor) tick(ctx context.Context, cfg Settings) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("monitor tick panic: %v", r)
		}
	}()

	// Extensions are evaluated in the store's listed order; one
	// extension's failure never aborts the rest of the cycle.
	for _, entry := range m.baselines.Snapshot() {
		if ctx.Err() != nil {
			return
		}
		m.evaluate(ctx, cfg, entry)
	}
}

// evaluate runs the per-extension state machine for one tick:
// Idle -> Reading -> {NoDrift, Drifted} -> (auto-restore) Restoring ->
// {Restored, RestoreFailed}. Steady state is silent; every other
// terminal state emits exactly one event.
func (m *Monitor) evaluate(ctx context.Context, cfg Settings, entry baseline.Entry) (eventlog.Event, bool) {
	current, err := m.reader.CurrentHandler(ctx, entry.Ext)
	if err != nil {
		// An unassociated extension is not drift. Any other read
		// failure is recorded and no write is ever attempted from an
		// unreadable state.
		if assoc.IsNotFound(err) {
			return eventlog.Event{}, false
		}
		log.Warnf("read handler for %s failed: %v", entry.Ext, err)
		return m.emit(ctx, eventlog.New(entry.Ext, "", entry.Handler, eventlog.ActionRestoreFailed).WithError(err)), true
	}

	if current == entry.Handler {
		return eventlog.Event{}, false
	}

	if !cfg.AutoRestore {
		return m.emit(ctx, eventlog.New(entry.Ext, current, entry.Handler, eventlog.ActionNone)), true
	}

	if err := m.restorer.Restore(ctx, entry.Ext, entry.Handler); err != nil {
		log.Errorf("restore %s to %s failed: %v", entry.Ext, entry.Handler, err)
		return m.emit(ctx, eventlog.New(entry.Ext, current, entry.Handler, eventlog.ActionRestoreFailed).WithError(err)), true
	}

	log.Infof("restored %s to %s (was %s)", entry.Ext, entry.Handler, current)
	return m.emit(ctx, eventlog.New(entry.Ext, current, entry.Handler, eventlog.ActionRestored)), true
}

func (m *Monitor) emit(ctx context.Context, e eventlog.Event) eventlog.Event {
	m.events.Append(e)
	if m.sink != nil {
		if err := m.sink.SaveEvent(ctx, e); err != nil && !errors.Is(err, context.Canceled) {
			log.Warnf("persist event for %s: %v", e.Ext, err)
		}
	}
	return e
}
