// Package screen ties the todo store and the filter selection together into
// the state object the presentation layer owns.
package screen

import (
	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/seed"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/view"
)

// State is created when the screen opens and dropped when it closes.
type State struct {
	todos  *store.Store
	filter *view.FilterState
}

// New builds a State seeded with entries. Blank entries are skipped.
func New(gen ident.Generator, entries []seed.Entry, initial model.Filter) *State {
	s := &State{
		todos:  store.New(gen),
		filter: view.NewFilterState(initial),
	}
	for _, e := range entries {
		s.todos.Seed(e.Value, e.Done)
	}
	return s
}

func (s *State) Add(text string) (model.Item, bool) { return s.todos.Add(text) }

func (s *State) Toggle(id string) bool { return s.todos.Toggle(id) }

func (s *State) SetFilter(f model.Filter) bool { return s.filter.Set(f) }

func (s *State) Filter() model.Filter { return s.filter.Get() }

// Get returns the stored item, which may be newer than a rendered copy.
func (s *State) Get(id string) (model.Item, bool) { return s.todos.Get(id) }

func (s *State) Len() int { return s.todos.Len() }

// Items returns the store contents in insertion order.
func (s *State) Items() []model.Item { return s.todos.List() }

// Visible is the projection currently on screen.
func (s *State) Visible() []model.Item {
	return view.Project(s.todos.List(), s.filter.Get())
}

// Stats counts over every item, regardless of the filter.
func (s *State) Stats() (done, pending int) {
	return view.Stats(s.todos.List())
}
