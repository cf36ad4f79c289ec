package highscore

import (
	"cmp"
	"slices"
)

// MaxEntries is the number of scores kept.
const MaxEntries = 10

// Table is the in-memory top ten, kept sorted by score descending.
type Table struct {
	store   Store
	entries []Entry
}

// NewTable returns an empty table backed by store.
func NewTable(store Store) *Table {
	return &Table{store: store}
}

// Open returns a table loaded from store.
func Open(store Store) (*Table, error) {
	t := NewTable(store)
	if err := t.Load(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load replaces the table contents with the store's, sorted and truncated.
func (t *Table) Load() error {
	entries, err := t.store.Load()
	if err != nil {
		return err
	}
	t.entries = rank(entries)
	return nil
}

// Save writes the current entries to the store.
func (t *Table) Save() error {
	return t.store.Save(t.entries)
}

// Entries returns a copy of the ranked entries.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of ranked entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether score would earn a place in the table.
func (t *Table) Qualifies(score int) bool {
	if len(t.entries) < MaxEntries {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Add inserts an entry, re-ranks, truncates to MaxEntries and saves. The
// updated list is returned even if saving fails.
func (t *Table) Add(name string, score int) ([]Entry, error) {
	t.entries = rank(append(t.entries, Entry{Name: name, Score: score}))
	return t.Entries(), t.Save()
}

// rank sorts by score descending, keeping earlier entries first on ties.
func rank(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
