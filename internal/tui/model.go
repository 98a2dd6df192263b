package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/screen"
	"github.com/Makepad-fr/tada/internal/ui"
)

// focusArea is the control receiving keys. Tab order follows screen order.
type focusArea int

const (
	focusFilters focusArea = iota
	focusInput
	focusList
	focusCount
)

// Options configure the screen.
type Options struct {
	Title       string
	Placeholder string
	CharLimit   int
	Logger      *log.Logger
}

// Model is the Bubble Tea model for the todo screen. All state changes go
// through state; the model only forwards intents and re-projects.
type Model struct {
	state *screen.State
	opts  Options
	log   *log.Logger
	keys  keyMap

	list  list.Model
	input textinput.Model
	help  help.Model

	focus        focusArea
	filterCursor int
	width        int
	height       int
}

// rows taken by everything except the list: panel border (2), header (2),
// blank lines (2), filters (1), form box (3), help (1)
const chromeHeight = 11

func New(state *screen.State, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "TODO List"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := ui.Current()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = t.Help
	l.Styles.NoItems = t.Muted

	// set up text input for the add form
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help

	m := Model{
		state:  state,
		opts:   opts,
		log:    logger,
		keys:   defaultKeyMap(),
		list:   l,
		input:  ti,
		help:   h,
		focus:  focusInput,
		width:  80,
		height: 24,
	}
	m.filterCursor = filterIndex(state.Filter())
	m.refresh()
	m.resize()
	return m
}

// Run starts the screen and blocks until the user quits.
func Run(state *screen.State, opts Options) error {
	p := tea.NewProgram(New(state, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusFilters:
			return m.updateFilters(msg)
		default:
			return m.updateList(msg)
		}
	}

	// cursor blink and friends
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Leave):
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(model.Filters())
	switch {
	case key.Matches(msg, m.keys.Left):
		m.filterCursor = (m.filterCursor + n - 1) % n
	case key.Matches(msg, m.keys.Right):
		m.filterCursor = (m.filterCursor + 1) % n
	case key.Matches(msg, m.keys.Complete):
		m.applyFilter(model.Filters()[m.filterCursor])
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.shortcut(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Complete):
		m.completeSelected()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.shortcut(msg):
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// shortcut handles the 1/2/3 filter keys outside the text field.
func (m *Model) shortcut(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.All):
		m.applyFilter(model.FilterAll)
	case key.Matches(msg, m.keys.Done):
		m.applyFilter(model.FilterDone)
	case key.Matches(msg, m.keys.Pending):
		m.applyFilter(model.FilterPending)
	default:
		return false
	}
	return true
}

func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	m.focus = f
	m.list.SetDelegate(itemDelegate{active: f == focusList})
	if f == focusInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// submit adds the field's text as a new item and clears the field.
// Blank text is ignored and left in place.
func (m *Model) submit() {
	it, ok := m.state.Add(m.input.Value())
	if !ok {
		return
	}
	m.log.Debug("todo item added", "id", it.ID)
	m.input.Reset()
	m.refresh()
}

func (m *Model) completeSelected() {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return
	}
	it, ok := m.state.Get(li.ID)
	if !ok || it.Done {
		return
	}
	m.log.Debug("todo item toggled", "id", it.ID)
	m.state.Toggle(it.ID)
	m.refresh()
}

func (m *Model) applyFilter(f model.Filter) {
	if !m.state.SetFilter(f) {
		return
	}
	m.filterCursor = filterIndex(f)
	m.log.Debug("filter changed", "filter", f)
	m.refresh()
	m.list.Select(0)
}

// refresh re-projects the store into the list. Called after every mutation.
func (m *Model) refresh() {
	visible := m.state.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, listItem{Item: it})
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	h := max(m.height-chromeHeight, 3)
	m.list.SetSize(w, h)
	m.input.Width = max(w-6, 10)
	m.help.Width = w
}

func (m Model) View() string {
	t := ui.Current()
	done, pending := m.state.Stats()
	total := done + pending

	// Header title with live counts
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(m.opts.Title),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), total,
	)
	progress := t.Muted.Render(ui.ProgressBar(done, total, 28))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		progress,
		"",
		m.filtersView(),
		m.formView(),
		"",
		m.list.View(),
		m.help.ShortHelpView(m.keys.help(m.focus)),
	)
	return ui.PanelString(content)
}

func (m Model) filtersView() string {
	t := ui.Current()
	buttons := make([]string, 0, len(model.Filters()))
	for i, f := range model.Filters() {
		style := t.Button
		if f == m.state.Filter() {
			style = t.ButtonActive
		}
		label := style.Render(strconv.Itoa(i+1) + " " + f.Label())
		if m.focus == focusFilters && i == m.filterCursor {
			label = t.ButtonFocused.Render(label)
		}
		buttons = append(buttons, label)
	}
	return strings.Join(buttons, " ")
}

func (m Model) formView() string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(max(m.width-8, 10))
	if m.focus == focusInput {
		box = box.BorderForeground(t.Accent.GetForeground())
	}
	return box.Render(m.input.View())
}

func filterIndex(f model.Filter) int {
	for i, x := range model.Filters() {
		if x == f {
			return i
		}
	}
	return 0
}
