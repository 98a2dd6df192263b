package model

// Item is the domain model for a todo entry.
// ID and Value are fixed at creation; only Done changes, via toggle.
type Item struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Done  bool   `json:"done"`
}
