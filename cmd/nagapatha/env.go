package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/nagapatha/internal/advisor"
	"github.com/vovakirdan/nagapatha/internal/audio"
	"github.com/vovakirdan/nagapatha/internal/config"
	"github.com/vovakirdan/nagapatha/internal/platform/tui"
	"github.com/vovakirdan/nagapatha/internal/storage"
)

// env holds everything a command builds from the global flags.
type env struct {
	deps   tui.Deps
	tier   config.Tier
	closer []func()
}

// newLogger returns a logger for the command. Full-screen commands log to
// --log-file or nowhere, others log to stderr.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "nagapatha",
	})
	return logger, closeFn, nil
}

// setup loads configuration and opens the collaborators shared by the
// commands. A missing database is a warning: the game still works.
func setup(fullScreen, withSound bool) (*env, error) {
	logger, closeLog, err := newLogger(fullScreen)
	if err != nil {
		return nil, err
	}
	e := &env{closer: []func(){closeLog}}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		e.Close()
		return nil, err
	}

	e.tier = cfg.DefaultTier()
	if flagDifficulty != "" {
		tier, err := config.ParseTier(flagDifficulty)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.tier = tier
	}

	advisorName := cfg.Advisor.Name
	if flagAdvisor != "" {
		advisorName = flagAdvisor
	}
	if advisorName == "" {
		advisorName = "rules"
	}
	adv, err := advisor.Create(advisorName)
	if err != nil {
		e.Close()
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	} else {
		e.closer = append(e.closer, func() { store.Close() })
	}

	e.deps = tui.Deps{
		Config:  cfg,
		Store:   store,
		Advisor: adv,
		Seed:    flagSeed,
		Logger:  logger,
	}

	if withSound {
		player := audio.NewPlayer(1, logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			e.deps.Sounds = player
			e.closer = append(e.closer, player.Close)
		}
	}

	return e, nil
}

// Close releases everything setup opened, newest first.
func (e *env) Close() {
	for i := len(e.closer) - 1; i >= 0; i-- {
		e.closer[i]()
	}
	e.closer = nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
