package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// newLogger builds the CLI logger. Without --log-file, output goes to
// fallback; the TUI commands pass io.Discard since the alt screen owns the
// terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig loads the configuration the game will use.
func loadConfig() (config.MinesweeperConfig, error) {
	return config.LoadMinesweeper(flagConfig)
}

// newGame creates the game for a resolved preset. Presets defined only in a
// config file are not registered, so they get a fresh game directly.
func newGame(id mscore.PresetID) (registry.Game, error) {
	gameID := minesweeper.GameID(id)
	if registry.Exists(gameID) {
		return registry.Create(gameID)
	}
	return minesweeper.New(id), nil
}

func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
