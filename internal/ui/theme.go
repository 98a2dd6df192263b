package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style
	Button, ButtonActive, ButtonFocused           lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var current = classic()

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:          lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:      lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Button:        lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ButtonActive:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		ButtonFocused: lipgloss.NewStyle().Underline(true),
		Border:        lipgloss.RoundedBorder(),
		BorderColor:   lipgloss.Color("8"),
		BoxUnchecked:  "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // bright magenta
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.ButtonActive = t.ButtonActive.Background(lipgloss.Color("13"))
	t.BorderColor = lipgloss.Color("14")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain.Bold(true), Muted: plain, Accent: plain,
		Success: plain, Error: plain, Pending: plain,
		Done:          plain.Strikethrough(true),
		Selected:      plain.Reverse(true),
		Help:          plain,
		Button:        plain.Padding(0, 1),
		ButtonActive:  plain.Padding(0, 1).Reverse(true),
		ButtonFocused: plain.Underline(true),
		Border:        asciiBorder,
		BorderColor:   lipgloss.NoColor{},
		BoxUnchecked:  "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
	}
}

// ThemeNames lists the themes SetTheme understands.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// KnownTheme reports whether name is one of ThemeNames.
func KnownTheme(name string) bool {
	switch strings.ToLower(name) {
	case "classic", "neon", "mono", "":
		return true
	}
	return false
}

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
