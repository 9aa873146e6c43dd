package game

import "fmt"

// maxLogEntries bounds the in-memory event log.
const maxLogEntries = 128

// LogEntry is one recorded game event.
type LogEntry struct {
	Tick int
	Text string
}

// EventLog is a bounded ring of notable game events. The HUD shows the
// tail and the debug report dumps the whole thing.
type EventLog struct {
	entries []LogEntry
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a formatted event at the given tick.
func (l *EventLog) Add(tick int, format string, args ...any) {
	l.entries = append(l.entries, LogEntry{Tick: tick, Text: fmt.Sprintf(format, args...)})
	if len(l.entries) > maxLogEntries {
		l.entries = l.entries[len(l.entries)-maxLogEntries:]
	}
}

// Tail returns up to n most recent entries, oldest first.
func (l *EventLog) Tail(n int) []LogEntry {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

// All returns every retained entry, oldest first.
func (l *EventLog) All() []LogEntry {
	return l.entries
}
