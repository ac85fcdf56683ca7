package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to move, Enter to select a board.
Quitting a game returns to the menu.

Examples:
  mines menu
  mines menu --config ./minesweeper.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetLogger(logger)

	presets := append(cfg.PresetTable(), cfg.CustomPreset())
	items := make([]tui.MenuItem, 0, len(presets))
	byGameID := make(map[string]int, len(presets))
	for i, p := range presets {
		id := minesweeper.GameID(p.ID)
		byGameID[id] = i
		items = append(items, tui.MenuItem{
			GameID: id,
			Name:   p.Name,
			Width:  p.Width,
			Height: p.Height,
			Mines:  p.Mines,
		})
	}

	rc := runtimeConfig()
	for {
		res, err := tui.RunMenu(items, rc)
		if err != nil {
			logger.Error("menu failed", "err", err)
			closeLog()
			exitErr("%v", err)
		}
		rc = res.Config
		if res.Quit {
			return
		}

		game, err := newGame(presets[byGameID[res.GameID]].ID)
		if err != nil {
			logger.Error("creating game", "id", res.GameID, "err", err)
			continue
		}

		// Fresh seed per game unless pinned
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, rc, logger); err != nil {
			logger.Error("running game", "id", res.GameID, "err", err)
		}
	}
}
