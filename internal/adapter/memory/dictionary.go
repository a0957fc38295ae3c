// Package memory implements the dictionary repository in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pscheid92/wordbook/internal/domain"
)

// Dictionary keeps entries in insertion order with a word index for lookups.
// Entries live for the lifetime of the process.
type Dictionary struct {
	mu      sync.RWMutex
	entries []domain.Entry
	index   map[string]int
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		index: make(map[string]int),
	}
}

func (d *Dictionary) Find(_ context.Context, word string) (domain.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[word]
	if !ok {
		return domain.Entry{}, domain.ErrWordNotFound
	}
	return d.entries[i], nil
}

// Append checks for a duplicate and stores the entry under one lock.
func (d *Dictionary) Append(_ context.Context, entry domain.Entry) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.index[entry.Word]; exists {
		return len(d.entries), &domain.WordExistsError{Word: entry.Word}
	}

	d.index[entry.Word] = len(d.entries)
	d.entries = append(d.entries, entry)
	return len(d.entries), nil
}

func (d *Dictionary) Count(_ context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Check verifies that the word index and the entry list agree.
func (d *Dictionary) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dictionary check aborted: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.index) != len(d.entries) {
		return fmt.Errorf("index holds %d words for %d entries", len(d.index), len(d.entries))
	}
	for word, i := range d.index {
		if i < 0 || i >= len(d.entries) || d.entries[i].Word != word {
			return fmt.Errorf("index entry %q points to position %d", word, i)
		}
	}
	return nil
}
