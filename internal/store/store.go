// Package store holds the screen's authoritative list of items in memory.
package store

import (
	"strings"

	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/model"
)

// Store is an ordered, in-memory collection of items.
// Insertion order is kept; toggling never reorders.
// Not safe for concurrent use; the screen mutates it from one event loop.
type Store struct {
	gen   ident.Generator
	items []model.Item
}

func New(gen ident.Generator) *Store {
	return &Store{gen: gen}
}

// Add appends a pending item with the trimmed text.
// Blank text is ignored and reported with ok == false.
func (s *Store) Add(text string) (model.Item, bool) {
	return s.Seed(text, false)
}

// Seed is Add with an explicit initial done flag. Used when the screen is
// instantiated with sample data.
func (s *Store) Seed(text string, done bool) (model.Item, bool) {
	value := strings.TrimSpace(text)
	if value == "" {
		return model.Item{}, false
	}
	it := model.Item{ID: s.gen.NewID(), Value: value, Done: done}
	s.items = append(s.items, it)
	return it, true
}

// Toggle flips Done on the item with the given id.
// Unknown ids are a no-op and return false.
func (s *Store) Toggle(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			return true
		}
	}
	return false
}

// Get looks an item up by id.
func (s *Store) Get(id string) (model.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// List returns a copy of the items in insertion order.
func (s *Store) List() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }
