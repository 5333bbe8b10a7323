// Package history keeps the ordered log of submitted commands for one session.
package history

import (
	"time"

	"webterm/internal/shell"
)

// Entry is one submitted line and its result. Entries are never modified
// after Append.
type Entry struct {
	ID      uint64
	Request string
	Result  shell.Result
	At      time.Time
}

// Log is an append-only sequence of entries. It is owned by a single session
// and is not safe for concurrent use.
type Log struct {
	entries []Entry
	nextID  uint64
	limit   int
	dropped int
	now     func() time.Time
}

// New creates a log. A positive limit bounds how many entries are kept;
// older entries fall out of the window while ids keep increasing.
func New(limit int) *Log {
	if limit < 0 {
		limit = 0
	}
	return &Log{limit: limit, now: time.Now}
}

// Append records request and result and returns the new entry.
func (l *Log) Append(request string, result shell.Result) Entry {
	e := Entry{
		ID:      l.nextID,
		Request: request,
		Result:  result,
		At:      l.now(),
	}
	l.nextID++
	l.entries = append(l.entries, e)

	if l.limit > 0 && len(l.entries) > l.limit {
		over := len(l.entries) - l.limit
		l.entries = append([]Entry(nil), l.entries[over:]...)
		l.dropped += over
	}
	return e
}

// Entries returns a copy of the retained entries in arrival order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of retained entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Dropped returns how many entries fell out of the window since the last Clear
func (l *Log) Dropped() int {
	return l.dropped
}

// Clear discards every entry and resets the id and window counters to zero.
func (l *Log) Clear() {
	l.entries = nil
	l.nextID = 0
	l.dropped = 0
}
