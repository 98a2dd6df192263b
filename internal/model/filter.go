package model

import (
	"errors"
	"fmt"
	"strings"
)

// Filter selects which items the screen shows.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterDone    Filter = "done"
	FilterPending Filter = "pending"
)

// ErrUnknownFilter is returned by ParseFilter for values outside the enumeration.
var ErrUnknownFilter = errors.New("unknown filter")

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterDone, FilterPending}
}

// ParseFilter is the boundary check for filters coming from flags, config or keys.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q (want all, done or pending)", ErrUnknownFilter, s)
	}
	return f, nil
}

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterDone, FilterPending:
		return true
	}
	return false
}

func (f Filter) String() string { return string(f) }

// Label is the button caption.
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "Done"
	case FilterPending:
		return "Pending"
	default:
		return "All"
	}
}
