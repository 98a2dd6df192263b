package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ident"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (default ~/.config/tada/config.toml)")
	theme := flag.String("theme", "", "theme: classic, neon or mono")
	filter := flag.String("filter", "", "initial filter: all, done or pending")
	seedPath := flag.String("seed", "", "start with items from a .json or .toml file")
	debug := flag.Bool("debug", false, "debug logging to "+logging.DebugFile)
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	// flags win over file and env
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	if *filter != "" {
		cfg.UI.Filter = *filter
	}
	if *seedPath != "" {
		cfg.Seed.Path = *seedPath
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.UI.Theme)
	if err := ui.SetColorMode(cfg.UI.Color); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Format: cfg.Log.Format,
		Debug:  *debug,
	})
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := ident.Check(); err != nil {
		logger.Error("startup failed", "err", err)
		ui.Fail(os.Stderr, "cannot start: "+err.Error())
		closer.Close()
		os.Exit(1)
	}

	code := cli.Run(flag.Args(), cli.Options{
		Config: cfg,
		Logger: logger,
		Group:  *groupPending,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	closer.Close()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
