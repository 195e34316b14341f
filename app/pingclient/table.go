package pingclient

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoEntry indicates that a reply or timeout does not match an outstanding probe.
var ErrNoEntry = errors.New("no matching probe entry")

// Record describes one outstanding probe.
// It is never modified after insertion.
type Record struct {
	Number uint64
	SentAt time.Time
}

// Table correlates outstanding probes with asynchronously arriving replies and timeouts.
// The key is the full probe name.
type Table struct {
	mu      sync.Mutex
	entries map[string]Record
}

// NewTable creates a Table.
func NewTable() *Table {
	return &Table{
		entries: map[string]Record{},
	}
}

// Put inserts a record for an emitted probe.
// The key must not have an outstanding record.
func (t *Table) Put(key string, rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; ok {
		return fmt.Errorf("duplicate probe entry %s", key)
	}
	t.entries[key] = rec
	return nil
}

// Take retrieves and removes the record for key.
// It returns ErrNoEntry if the probe is unknown, which indicates a stray or
// duplicate notification from the network.
func (t *Table) Take(key string) (Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.entries[key]
	if !ok {
		return Record{}, ErrNoEntry
	}
	delete(t.entries, key)
	return rec, nil
}

// Pending returns the number of outstanding probes.
func (t *Table) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
