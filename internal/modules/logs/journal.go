package logs

import (
	"sync"
)

// Journal is an append only list of log entries.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

var (
	defaultJournal     *Journal
	defaultJournalOnce sync.Once
)

func NewJournal() *Journal {
	return &Journal{}
}

// DefaultJournal returns the process wide journal, created on first use.
// Prefer passing a *Journal explicitly; this exists for callers that have
// nothing to inject it from.
func DefaultJournal() *Journal {
	defaultJournalOnce.Do(func() {
		defaultJournal = NewJournal()
	})
	return defaultJournal
}

func (j *Journal) Add(entry string) {
	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()
}

func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}
