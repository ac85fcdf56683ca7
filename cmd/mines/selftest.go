package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/selftest"
)

var (
	flagBoards  int
	flagWorkers int
	flagClicks  int
)

var selftestCmd = &cobra.Command{
	Use:   "selftest [preset]",
	Short: "Generate boards in parallel and check them",
	Long: `Generates boards around random first clicks on several workers and
checks every one: exact mine count, a mine-free 3x3 around the click, and
adjacency numbers. The workers then click at random on one shared session
and the flag and reveal counters are recounted.

Examples:
  mines selftest
  mines selftest hard --boards 10000 --workers 8`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSelftest,
}

func init() {
	selftestCmd.Flags().IntVar(&flagBoards, "boards", 1000, "Boards to generate")
	selftestCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Parallel workers")
	selftestCmd.Flags().IntVar(&flagClicks, "clicks", 200, "Clicks per worker on the shared session")
	selftestCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset id (overridden by the argument)")
}

func runSelftest(_ *cobra.Command, args []string) {
	name := flagPreset
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}
	preset, err := config.ApplyMinesweeperPreset(cfg, name)
	if err != nil {
		exitErr("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := selftest.Run(ctx, selftest.Options{
		Preset:  preset,
		Boards:  flagBoards,
		Workers: flagWorkers,
		Clicks:  flagClicks,
		Seed:    flagSeed,
	}, logger)
	if err != nil {
		closeLog()
		exitErr("selftest: %v", err)
	}

	fmt.Printf("Preset:   %s (%dx%d, %d mines)\n", preset.Name, preset.Width, preset.Height, preset.Mines)
	fmt.Printf("Boards:   %d ok on %d workers in %s\n", rep.Boards, flagWorkers, rep.Elapsed.Round(time.Millisecond))
	fmt.Printf("3BV:      min %d  mean %.1f  max %d\n", rep.MinBV, rep.MeanBV(), rep.MaxBV)
	fmt.Printf("Openings: %d  isolated numbers: %d\n", rep.Openings, rep.Isolated)
	fmt.Printf("Shared:   %s, %d revealed, %d mines unflagged\n", rep.Shared.Stage, rep.Shared.Revealed, rep.Shared.MinesRemaining)
}
