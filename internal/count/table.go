package count

import (
	"errors"
	"sort"
)

// ErrTableFull is returned by Increment when a distinct-word limit is
// configured and a new word would exceed it.
var ErrTableFull = errors.New("distinct word limit exceeded")

// Entry is one word and its accumulated count.
type Entry struct {
	Word  string
	Count uint64
}

// Table maps words to counts. It is not safe for concurrent use; the
// Aggregator serializes all access to it.
type Table struct {
	counts   map[string]uint64
	maxWords int // 0 = unlimited
}

// NewTable creates an empty table. maxWords caps the number of distinct
// words; 0 means the table grows without bound.
func NewTable(maxWords int) *Table {
	return &Table{
		counts:   make(map[string]uint64),
		maxWords: maxWords,
	}
}

// Increment adds one to word's count, inserting it with count 1 if absent.
// Inserting past a configured distinct-word limit fails with ErrTableFull;
// words already present can always be incremented.
func (t *Table) Increment(word string) error {
	if _, ok := t.counts[word]; !ok && t.maxWords > 0 && len(t.counts) >= t.maxWords {
		return ErrTableFull
	}
	t.counts[word]++
	return nil
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.counts)
}

// Entries returns an unordered copy of the table.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.counts))
	for w, c := range t.counts {
		out = append(out, Entry{Word: w, Count: c})
	}
	return out
}

// SortEntries orders entries by count descending, ties broken by word
// ascending in byte order. The result is deterministic for a given multiset
// of words regardless of insertion order.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
}
