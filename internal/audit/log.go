package audit

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry severities.
const (
	SeverityInfo        = "info"
	SeverityWarning     = "warning"
	SeverityDestructive = "destructive"
)

// Entry is one immutable audit record. Entries are never mutated or deleted
// and live for the process lifetime.
type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	Severity  string    `json:"severity"`
}

// Log is an append-only, in-memory audit trail. Appends are serialized by a
// mutex so concurrent handlers never interleave mid-write, and List hands out
// snapshots so a caller's view cannot be altered by later appends.
type Log struct {
	mu      sync.Mutex
	user    string
	entries []Entry
	now     func() time.Time
}

// NewLog creates an empty Log attributed to the given acting user.
func NewLog(user string) *Log {
	return &Log{
		user: user,
		now:  time.Now,
	}
}

// NewSeededLog creates a Log preloaded with the demo audit history. It is
// the audit counterpart of catalog.NewSeededStorage: the one place the
// process's demo fixtures are stamped out at startup.
func NewSeededLog(user string) *Log {
	l := NewLog(user)
	l.seed()
	return l
}

func (l *Log) seed() {
	now := l.now()
	seed := []struct {
		action   string
		details  string
		severity string
		at       time.Time
	}{
		{"LOGIN", "User logged in successfully", SeverityInfo, now.Add(-24 * time.Hour)},
		{"UPDATE_STOCK", "Added 50 units to 'Wireless Mouse'", SeverityInfo, now.Add(-11 * time.Hour)},
		{"DELETE_INVOICE", "Deleted invoice INV-009 (Draft)", SeverityDestructive, now.Add(-time.Hour)},
		{"REFUND", "Processed refund for INV-004", SeverityWarning, now},
	}

	for _, s := range seed {
		entry := Entry{
			ID:        uuid.NewString(),
			Action:    s.action,
			User:      l.user,
			Details:   s.details,
			Timestamp: s.at,
			Severity:  s.severity,
		}
		l.entries = append([]Entry{entry}, l.entries...)
	}
}

// Append records a new entry at the head of the sequence with a fresh id and
// the current timestamp. An empty severity defaults to info. The created
// entry is returned.
func (l *Log) Append(action, details, severity string) Entry {
	if severity == "" {
		severity = SeverityInfo
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		ID:        uuid.NewString(),
		Action:    action,
		User:      l.user,
		Details:   details,
		Timestamp: l.now(),
		Severity:  severity,
	}
	l.entries = append([]Entry{entry}, l.entries...)
	return entry
}

// List returns a snapshot of all entries sorted most recent first. The sort
// is stable, so entries sharing a timestamp keep their storage order.
func (l *Log) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
