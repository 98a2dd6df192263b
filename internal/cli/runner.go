package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/screen"
	"github.com/Makepad-fr/tada/internal/seed"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Config config.Config
	Logger *log.Logger
	Group  bool // list grouped by pending/done
	Stdout io.Writer
	Stderr io.Writer

	// IDs defaults to random UUIDs.
	IDs ident.Generator
	// RunScreen defaults to tui.Run; swapped out in tests.
	RunScreen func(*screen.State, tui.Options) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.IDs == nil {
		opt.IDs = ident.UUID{}
	}
	if opt.RunScreen == nil {
		opt.RunScreen = tui.Run
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}

	cmd, a := "run", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "run":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo run")
			return 2
		}
		return doRun(opt)

	case "ls":
		fs := flag.NewFlagSet("ls", flag.ContinueOnError)
		fs.SetOutput(opt.Stderr)
		filter := fs.String("filter", opt.Config.UI.Filter, "all, done or pending")
		group := fs.Bool("group", opt.Group, "group output by pending/done")
		if err := fs.Parse(a); err != nil {
			return 2
		}
		if fs.NArg() != 0 {
			ui.Fail(opt.Stderr, "usage: todo ls [-filter all|done|pending] [-group]")
			return 2
		}
		f, err := model.ParseFilter(*filter)
		if err != nil {
			ui.Fail(opt.Stderr, "ls: "+err.Error())
			return 2
		}
		opt.Group = *group
		return doList(f, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a single-screen todo list

Usage:
  todo [flags] [subcommand]

Subcommands:
  run                Open the todo screen (default)
  ls                 Print the starting list and exit
      -filter F      all, done or pending
      -group         Group output by pending/done
  help               Show this help

Flags:
  -config <path>     Config file (default ~/.config/tada/config.toml)
  -theme <name>      classic, neon or mono
  -filter <name>     Initial filter: all, done or pending
  -seed <path>       Start with items from a .json or .toml file
  -debug             Debug logging to tada-debug.log
  -group             Group ls output by pending/done

Screen keys:
  tab / shift+tab    Move between filters, input and list
  enter              Add item (input) / complete item (list)
  1 2 3              Show all / done / pending
  q, ctrl+c          Quit
`)
}

// -------------- subcommand impls ----------------

func newState(opt Options, f model.Filter) (*screen.State, error) {
	entries, err := seed.Resolve(opt.Config.Seed.Path, opt.Config.Seed.Builtin)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return screen.New(opt.IDs, entries, f), nil
}

func doRun(opt Options) int {
	f, err := model.ParseFilter(opt.Config.UI.Filter)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 2
	}
	state, err := newState(opt, f)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	opt.Logger.Debug("screen opened", "items", state.Len(), "filter", f)

	err = opt.RunScreen(state, tui.Options{
		Title:       opt.Config.UI.Title,
		Placeholder: opt.Config.UI.Placeholder,
		CharLimit:   opt.Config.UI.CharLimit,
		Logger:      opt.Logger,
	})
	if err != nil {
		opt.Logger.Error("screen failed", "err", err)
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	done, pending := state.Stats()
	opt.Logger.Debug("screen closed", "done", done, "pending", pending)
	ui.OK(opt.Stdout, fmt.Sprintf("%d done, %d pending", done, pending))
	return 0
}

func doList(f model.Filter, opt Options) int {
	state, err := newState(opt, f)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	t := ui.Current()

	// Header + progress
	d, p := state.Stats()
	title := opt.Config.UI.Title
	if title == "" {
		title = "TODO List"
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), d+p,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, t.Muted.Render("filter: "+f.String()))
	lines = append(lines, "")

	visible := state.Visible()
	if opt.Group {
		lines = append(lines, groupLines(visible)...)
	} else {
		lines = append(lines, flatLines(visible)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: run `todo` to open the screen"))
	ui.Panel(opt.Stdout, lines)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		title := ui.Truncate(it.Value, 80)
		if it.Done {
			box = t.Success.Render(t.BoxChecked)
			title = t.Done.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
