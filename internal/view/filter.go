package view

import "github.com/Makepad-fr/tada/internal/model"

// FilterState is the currently selected filter. Zero value is not usable;
// build it with NewFilterState.
type FilterState struct {
	current model.Filter
}

// NewFilterState starts at initial, or at FilterAll when initial is not a
// known filter.
func NewFilterState(initial model.Filter) *FilterState {
	if !initial.Valid() {
		initial = model.FilterAll
	}
	return &FilterState{current: initial}
}

// Set replaces the selection. Values outside the enumeration are rejected.
func (f *FilterState) Set(next model.Filter) bool {
	if !next.Valid() {
		return false
	}
	f.current = next
	return true
}

func (f *FilterState) Get() model.Filter { return f.current }
