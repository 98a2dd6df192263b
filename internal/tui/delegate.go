package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Value }

const completeAction = "[complete]"

// itemDelegate renders one row per item. Pending rows carry the complete
// action; done rows are struck through and have none.
type itemDelegate struct {
	active bool // list has focus; draw the cursor
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	prefix := "  "
	if d.active && index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}

	width := m.Width() - 2
	var line string
	if it.Done {
		text := ui.Truncate(it.Value, width-lipgloss.Width(t.BoxChecked)-1)
		line = fmt.Sprintf("%s %s", t.Success.Render(t.BoxChecked), t.Done.Render(text))
	} else {
		text := ui.Truncate(it.Value, width-lipgloss.Width(t.BoxUnchecked)-len(completeAction)-3)
		line = fmt.Sprintf("%s %s  %s", t.Muted.Render(t.BoxUnchecked), text, t.Accent.Render(completeAction))
	}
	fmt.Fprint(w, prefix+line)
}
