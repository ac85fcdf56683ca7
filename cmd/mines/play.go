package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagPreset        string
	flagQuestionMarks bool
	flagWidth         int
	flagHeight        int
	flagMines         int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start a game on the given preset, or the config's default_preset.

Controls:
  Left click / Space   - Reveal (on a number: chord)
  Right click / F      - Flag
  Arrows / hjkl        - Move cursor
  1 / 2 / 3            - Easy / Medium / Hard
  M                    - Board menu
  R                    - New board
  ?                    - More help
  Q / Ctrl+C           - Quit

Presets:
  easy     12x8,  20 mines (alias: beginner)
  medium   16x12, 36 mines (alias: normal, intermediate)
  hard     24x16, 80 mines (alias: expert)
  custom   --width/--height/--mines or the config's custom board

Examples:
  mines play
  mines play expert
  mines play custom --width 30 --height 16
  mines play --preset medium --question-marks`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset id (overridden by the argument)")
	playCmd.Flags().BoolVar(&flagQuestionMarks, "question-marks", false, "Right click cycles flag, question mark, blank")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", -1, "Custom mine count (default 2.35*sqrt(tiles))")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := flagPreset
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	if flagWidth > 0 || flagHeight > 0 {
		name = string(config.DifficultyCustom)
		custom := mscore.CustomPreset(flagWidth, flagHeight, flagMines)
		if _, err := mscore.NewBoard(custom.Width, custom.Height, custom.Mines); err != nil {
			exitErr("%v", err)
		}
		minesweeper.SetCustomBoard(flagWidth, flagHeight, flagMines)
		cfg.Custom = config.CustomConfig{Width: custom.Width, Height: custom.Height, Mines: &custom.Mines}
	}

	preset, err := config.ApplyMinesweeperPreset(cfg, name)
	if err != nil {
		exitErr("%v\nRun 'mines list' to see available presets.", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetLogger(logger)
	if cmd.Flags().Changed("question-marks") {
		minesweeper.SetQuestionMarks(flagQuestionMarks)
	}

	game, err := newGame(preset.ID)
	if err != nil {
		exitErr("creating game: %v", err)
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		closeLog()
		exitErr("running game: %v", err)
	}
}
