// Package selftest exercises the Minesweeper engine in parallel: many
// generated boards checked against their invariants, then concurrent clicks
// on one shared session.
package selftest

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
)

// Options configures a run.
type Options struct {
	Preset  mscore.Preset
	Boards  int   // boards generated in the first phase
	Workers int   // goroutines per phase
	Clicks  int   // clicks per worker on the shared session
	Seed    int64 // worker w uses Seed+w
}

// Report summarises a run.
type Report struct {
	Boards   int
	Openings int
	Isolated int
	TotalBV  int
	MinBV    int
	MaxBV    int
	Shared   mscore.Snapshot
	Elapsed  time.Duration
}

// MeanBV returns the average 3BV over the generated boards.
func (r Report) MeanBV() float64 {
	if r.Boards == 0 {
		return 0
	}
	return float64(r.TotalBV) / float64(r.Boards)
}

// partial is one worker's share of the first phase.
type partial struct {
	boards, openings, isolated, bv int
	minBV, maxBV                   int
}

// Run executes both phases. The first broken board or counter mismatch
// cancels the remaining workers and is returned.
func Run(ctx context.Context, opts Options, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	start := time.Now()

	parts, err := generate(ctx, opts, logger)
	if err != nil {
		return Report{}, err
	}

	rep := Report{MinBV: -1}
	for _, p := range parts {
		if p.boards == 0 {
			continue
		}
		rep.Boards += p.boards
		rep.Openings += p.openings
		rep.Isolated += p.isolated
		rep.TotalBV += p.bv
		if rep.MinBV < 0 || p.minBV < rep.MinBV {
			rep.MinBV = p.minBV
		}
		rep.MaxBV = max(rep.MaxBV, p.maxBV)
	}
	if rep.MinBV < 0 {
		rep.MinBV = 0
	}

	rep.Shared, err = playShared(ctx, opts, logger)
	if err != nil {
		return rep, err
	}
	rep.Elapsed = time.Since(start)
	return rep, nil
}

// generate places mines on opts.Boards boards, split across the workers, and
// verifies each one.
func generate(ctx context.Context, opts Options, logger *log.Logger) ([]partial, error) {
	parts := make([]partial, opts.Workers)
	g, gCtx := errgroup.WithContext(ctx)

	for w := range opts.Workers {
		g.Go(func() error {
			seed := opts.Seed + int64(w)
			rng := rand.New(rand.NewSource(seed))
			b, err := mscore.NewBoard(opts.Preset.Width, opts.Preset.Height, opts.Preset.Mines)
			if err != nil {
				return err
			}

			p := partial{minBV: -1}
			for n := w; n < opts.Boards; n += opts.Workers {
				if err := gCtx.Err(); err != nil {
					return err
				}
				origin := rng.Intn(b.Len())
				if err := b.PlaceMines(origin, rng); err != nil {
					return fmt.Errorf("board %d: %w", n, err)
				}
				if err := b.Verify(origin); err != nil {
					logger.Error("broken board", "worker", w, "board", n, "seed", seed, "origin", origin, "err", err)
					return fmt.Errorf("board %d (worker seed %d, origin %d): %w", n, seed, origin, err)
				}
				st := b.Stats()
				p.boards++
				p.openings += st.Openings
				p.isolated += st.Isolated
				p.bv += st.BV
				if p.minBV < 0 || st.BV < p.minBV {
					p.minBV = st.BV
				}
				p.maxBV = max(p.maxBV, st.BV)
			}
			parts[w] = p
			logger.Info("worker done", "worker", w, "boards", p.boards)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

// playShared lets every worker click at random on one SyncSession, then
// checks the board counters against the visible layer.
func playShared(ctx context.Context, opts Options, logger *log.Logger) (mscore.Snapshot, error) {
	s, err := mscore.NewSession(opts.Preset, opts.Seed, mscore.WithLogger(logger), mscore.WithChording(true))
	if err != nil {
		return mscore.Snapshot{}, err
	}
	shared := mscore.NewSyncSession(s)
	n := opts.Preset.Width * opts.Preset.Height

	g, gCtx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(opts.Workers+w)))
			for k := range opts.Clicks {
				if err := gCtx.Err(); err != nil {
					return err
				}
				i := rng.Intn(n)
				var err error
				if k%4 == 0 {
					_, err = shared.FlagAt(i)
				} else {
					_, err = shared.RevealAt(i)
				}
				if err != nil {
					return fmt.Errorf("worker %d click %d on %d: %w", w, k, i, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return mscore.Snapshot{}, err
	}

	var checkErr error
	shared.Do(func(s *mscore.Session) {
		checkErr = s.Board().CheckCounters()
	})
	if checkErr != nil {
		return mscore.Snapshot{}, fmt.Errorf("shared session: %w", checkErr)
	}

	snap := shared.Snapshot()
	logger.Info("shared session done", "stage", snap.Stage, "revealed", snap.Revealed, "mines_remaining", snap.MinesRemaining)
	return snap, nil
}
