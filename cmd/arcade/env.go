package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/diag"
	"github.com/vovakirdan/flap-arcade/internal/registry"
	"github.com/vovakirdan/flap-arcade/internal/storage"
)

// session bundles the collaborators shared by the interactive commands.
type session struct {
	store  *storage.Store
	ring   *diag.Ring
	logger *log.Logger
	file   *os.File
}

// openSession opens the score store and builds the logger. The terminal
// belongs to the game, so logs go to the diagnostics ring and the optional
// --log file only.
func openSession() (*session, error) {
	s := &session{ring: diag.NewRing(diag.DefaultCapacity)}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = s.ring
	if flagLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		s.file = f
		w = io.MultiWriter(s.ring, f)
	}
	s.logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: flagLogPath != "",
		TimeFormat:      time.TimeOnly,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("playing without score history", "error", err)
	} else {
		s.store = store
	}

	return s, nil
}

// deps returns game collaborators backed by the session.
func (s *session) deps() registry.Deps {
	d := registry.Deps{Logger: s.logger}
	if s.store != nil {
		d.Prefs = s.store
	}
	return d
}

func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not close scores database: %v\n", err)
		}
	}
	if s.file != nil {
		s.file.Close()
	}
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// requireGame exits when id is not registered.
func requireGame(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}
