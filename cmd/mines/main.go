// mines is Minesweeper for the terminal.
//
// Usage:
//
//	mines list               - List boards and presets
//	mines play [preset]      - Play a board (easy, medium, hard, custom)
//	mines menu               - Pick boards interactively
//	mines selftest           - Generate boards in parallel and check them
//
// Global flags:
//
//	--fps <rate>       - UI tick rate (default: 30)
//	--seed <value>     - RNG seed for reproducible boards
//	--config <path>    - Custom minesweeper.yaml
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper with mouse and keyboard play.

The first click is always safe: mines are placed after it, away from the
clicked tile and its neighbours.

Available commands:
  list      - Show boards and presets
  play      - Play a board directly
  menu      - Interactive board picker
  selftest  - Parallel board generation check

Examples:
  mines play
  mines play hard
  mines play custom --width 30 --height 16 --mines 99
  mines menu --config ./minesweeper.yaml
  mines selftest --boards 5000 --preset expert`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(selftestCmd)
}
