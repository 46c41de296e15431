package presentable

import (
	"encoding/json"
	"iter"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

// Entries is an ordered, read-only collection of presentable entries.
type Entries struct {
	items []Entry
}

// NewEntries returns a collection holding copies of items in the given order.
func NewEntries(items ...Entry) Entries {
	out := make([]Entry, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return Entries{items: out}
}

// Len returns the number of entries.
func (e Entries) Len() int {
	return len(e.items)
}

// At returns a copy of the entry at index i.
func (e Entries) At(i int) Entry {
	return e.items[i].clone()
}

// All iterates over copies of the entries in order.
func (e Entries) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, item := range e.items {
			if !yield(i, item.clone()) {
				return
			}
		}
	}
}

// Slice returns a copy of the entries.
func (e Entries) Slice() []Entry {
	out := make([]Entry, len(e.items))
	for i, item := range e.items {
		out[i] = item.clone()
	}
	return out
}

// Sorted returns a new collection stably ordered by name.
func (e Entries) Sorted() Entries {
	out := e.Slice()
	slices.SortStableFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return Entries{items: out}
}

// ForSubcommand returns the entries applicable to the named subcommand.
func (e Entries) ForSubcommand(name string) Entries {
	out := make([]Entry, 0, len(e.items))
	for _, item := range e.items {
		if slices.Contains(item.Subcommands, name) {
			out = append(out, item.clone())
		}
	}
	return Entries{items: out}
}

// MarshalJSON encodes the collection as a JSON array.
func (e Entries) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Slice())
}

// MarshalYAML encodes the collection as a YAML sequence.
func (e Entries) MarshalYAML() (any, error) {
	return e.Slice(), nil
}

// ProjectAll projects every entry concurrently and keeps the input order.
// A panic in any projection is re-raised in the calling goroutine.
func ProjectAll(
	allSubcommands []string,
	applicationNameDashed string,
	entries []entity.SettingsEntry,
	settingsFilePath string,
) Entries {
	out := make([]Entry, len(entries))

	var (
		once     sync.Once
		panicked any
	)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, entry := range entries {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { panicked = r })
				}
			}()
			out[i] = FromSettingsEntry(allSubcommands, applicationNameDashed, entry, settingsFilePath)
			return nil
		})
	}
	_ = g.Wait()

	// Projection failures stay fatal, raised on the caller's goroutine.
	if panicked != nil {
		panic(panicked)
	}

	return Entries{items: out}
}
