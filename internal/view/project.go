// Package view derives what the screen shows from the store contents.
package view

import "github.com/Makepad-fr/tada/internal/model"

// Project filters items by f and stably partitions the result so pending
// items come before done ones. Relative order inside each group is the
// input order. The input slice is not modified.
func Project(items []model.Item, f model.Filter) []model.Item {
	pending := make([]model.Item, 0, len(items))
	var done []model.Item
	for _, it := range items {
		switch {
		case it.Done && f != model.FilterPending:
			done = append(done, it)
		case !it.Done && f != model.FilterDone:
			pending = append(pending, it)
		}
	}
	return append(pending, done...)
}

// Stats counts done and pending items.
func Stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
