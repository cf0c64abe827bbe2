package eventlog

import (
	"sync"

	"github.com/sherlock-488/WinAssocGuard/core/assoc"
)

// DefaultCapacity bounds the in-memory log when no capacity is given.
const DefaultCapacity = 1200

// Log is a bounded, append-only event buffer. Once capacity is
// exceeded the oldest entries are evicted first. Append is the only
// mutation; entries are never edited or removed out of order.
type Log struct {
	mu      sync.Mutex
	events  []Event
	cap     int
	subs    map[int]func(Event)
	nextSub int
}

// NewLog creates a log retaining at most capacity events.
// A non-positive capacity selects DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		cap:  capacity,
		subs: make(map[int]func(Event)),
	}
}

// Append adds an event and notifies subscribers. Subscribers run
// synchronously on the appending goroutine, outside the log's lock.
func (l *Log) Append(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	if overflow := len(l.events) - l.cap; overflow > 0 {
		l.events = append(l.events[:0:0], l.events[overflow:]...)
	}
	subs := make([]func(Event), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Recent returns up to limit events newest-first, optionally filtered
// by extension (the zero extension matches everything). A non-positive
// limit returns all retained matches.
func (l *Log) Recent(limit int, ext assoc.Extension) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, 0, min(len(l.events), max(limit, 0)))
	for i := len(l.events) - 1; i >= 0; i-- {
		e := l.events[i]
		if !ext.IsZero() && e.Ext != ext {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Len returns the number of retained events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Capacity returns the maximum number of retained events.
func (l *Log) Capacity() int {
	return l.cap
}

// Subscribe registers fn to receive each appended event. The returned
// function cancels the subscription.
func (l *Log) Subscribe(fn func(Event)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}
