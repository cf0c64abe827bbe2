// Package baseline holds the guarded extension -> handler baseline map.
package baseline

import (
	"fmt"
	"sync"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// Entry binds a guarded extension to its baseline handler. Label is a
// human-readable name for the handler, used for display only.
type Entry struct {
	Ext     assoc.Extension
	Handler assoc.HandlerID
	Label   string
}

// Store is the in-memory baseline map. It preserves insertion order
// for listing and exposes an atomic snapshot so one monitor tick sees
// a consistent set of baselines even while the presentation side edits
// concurrently. The store never touches the OS.
type Store struct {
	mu      sync.RWMutex
	order   []assoc.Extension
	entries map[assoc.Extension]Entry
}

// NewStore creates an empty baseline store.
func NewStore() *Store {
	return &Store{
		entries: make(map[assoc.Extension]Entry),
	}
}

// Get returns the entry for ext, if present.
func (s *Store) Get(ext assoc.Extension) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[assoc.NormalizeExt(ext.String())]
	return e, ok
}

// Set adds or updates the baseline for ext. Updating an existing
// extension keeps its position in the listing order. A zero handler is
// rejected: an extension with no baseline is simply not guarded.
func (s *Store) Set(ext assoc.Extension, handler assoc.HandlerID, label string) error {
	extn := assoc.NormalizeExt(ext.String())
	if !extn.Valid() {
		return fmt.Errorf("invalid extension: %q", ext)
	}
	handler = assoc.NormalizeHandler(handler.String())
	if handler.IsZero() {
		return fmt.Errorf("baseline handler for %s must not be empty", extn)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[extn]; !ok {
		s.order = append(s.order, extn)
	}
	s.entries[extn] = Entry{Ext: extn, Handler: handler, Label: label}
	return nil
}

// Remove deletes the baseline for ext, reporting whether it existed.
func (s *Store) Remove(ext assoc.Extension) bool {
	extn := assoc.NormalizeExt(ext.String())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[extn]; !ok {
		return false
	}
	delete(s.entries, extn)
	for i, e := range s.order {
		if e == extn {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Snapshot returns a consistent copy of all entries in insertion order.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, ext := range s.order {
		out = append(out, s.entries[ext])
	}
	return out
}

// Replace swaps the full contents of the store, keeping the order of
// the given entries. Invalid entries are skipped.
func (s *Store) Replace(entries []Entry) {
	order := make([]assoc.Extension, 0, len(entries))
	m := make(map[assoc.Extension]Entry, len(entries))
	for _, e := range entries {
		extn := assoc.NormalizeExt(e.Ext.String())
		handler := assoc.NormalizeHandler(e.Handler.String())
		if !extn.Valid() || handler.IsZero() {
			continue
		}
		if _, ok := m[extn]; !ok {
			order = append(order, extn)
		}
		m[extn] = Entry{Ext: extn, Handler: handler, Label: e.Label}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.entries = m
}

// Len returns the number of guarded extensions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
