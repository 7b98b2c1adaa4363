package count

import "sync"

// Aggregator is the only access path to the shared frequency table. A
// single mutex serializes increments from all reader goroutines against
// snapshots from the reporter, so no caller ever observes a half-applied
// update.
type Aggregator struct {
	mu    sync.Mutex
	table *Table
}

// NewAggregator wraps table in an Aggregator. The table must not be
// touched directly afterwards.
func NewAggregator(table *Table) *Aggregator {
	return &Aggregator{table: table}
}

// Increment adds one occurrence of word to the table.
func (a *Aggregator) Increment(word string) error {
	a.mu.Lock()
	err := a.table.Increment(word)
	a.mu.Unlock()
	return err
}

// Snapshot returns the table's entries as of one consistent instant,
// sorted by count descending then word ascending. The copy is taken under
// the lock; sorting happens on the copy after release so no O(n log n)
// work or I/O runs inside the critical section.
func (a *Aggregator) Snapshot() []Entry {
	a.mu.Lock()
	entries := a.table.Entries()
	a.mu.Unlock()

	SortEntries(entries)
	return entries
}

// Distinct returns the current number of distinct words.
func (a *Aggregator) Distinct() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.table.Len()
}
