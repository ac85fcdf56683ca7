package core

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Stage is the game phase that drives input handling and overlays.
type Stage int

const (
	StageNotStarted Stage = iota // board reset, mines not placed yet
	StageInProgress
	StageLost
	StageWon
	StageMenuOpen
)

func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "NotStarted"
	case StageInProgress:
		return "InProgress"
	case StageLost:
		return "Lost"
	case StageWon:
		return "Won"
	case StageMenuOpen:
		return "MenuOpen"
	default:
		return "Unknown"
	}
}

// Finished reports whether the round is over.
func (s Stage) Finished() bool {
	return s == StageLost || s == StageWon
}

// ClickResult summarises one click transaction.
type ClickResult struct {
	Index   int          // tile clicked, or NoTile
	Reveal  RevealResult // outcome on the clicked tile
	Mark    MarkResult   // outcome of a secondary click
	Opened  int          // tiles opened, flood fill and chords included
	Trigger int          // mine that ended the game, or NoTile
	Stage   Stage        // stage after the click
}

// Session owns one board together with its RNG, stage and screen layout.
// It is not safe for concurrent use; see SyncSession.
type Session struct {
	board  *Board
	rng    *rand.Rand
	logger *log.Logger
	layout Layout

	preset    Preset
	stage     Stage
	menuBelow Stage
	trigger   int

	questionMarks bool
	chording      bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLayout sets the surface geometry used by the click handlers.
func WithLayout(l Layout) Option {
	return func(s *Session) { s.layout = l }
}

// WithQuestionMarks makes secondary clicks cycle through a question mark.
func WithQuestionMarks(on bool) Option {
	return func(s *Session) { s.questionMarks = on }
}

// WithChording lets a primary click on an open number chord.
func WithChording(on bool) Option {
	return func(s *Session) { s.chording = on }
}

// NewSession creates a session on preset p. The seed drives every mine
// layout the session generates.
func NewSession(p Preset, seed int64, opts ...Option) (*Session, error) {
	s := &Session{
		board:   &Board{},
		rng:     rand.New(rand.NewSource(seed)),
		logger:  log.New(io.Discard),
		layout:  DefaultLayout(),
		trigger: NoTile,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.ApplyPreset(p); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyPreset resets the board to p and returns p's id.
func (s *Session) ApplyPreset(p Preset) (PresetID, error) {
	id, err := s.board.ApplyPreset(p)
	if err != nil {
		return "", err
	}
	s.preset = p
	s.stage = StageNotStarted
	s.menuBelow = StageNotStarted
	s.trigger = NoTile
	s.logger.Debug("board reset", "preset", p.ID, "width", p.Width, "height", p.Height, "mines", p.Mines)
	return id, nil
}

// Restart resets the board with the current preset.
func (s *Session) Restart() error {
	_, err := s.ApplyPreset(s.preset)
	return err
}

// Board exposes the board for read access.
func (s *Session) Board() *Board { return s.board }

// Preset returns the active preset.
func (s *Session) Preset() Preset { return s.preset }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Layout returns the surface geometry.
func (s *Session) Layout() Layout { return s.layout }

// SetLayout replaces the surface geometry, for example after a resize.
func (s *Session) SetLayout(l Layout) { s.layout = l }

// Tiles returns a copy of the visible layer.
func (s *Session) Tiles() []Tile { return s.board.Tiles() }

// MinesRemaining returns mines minus flags.
func (s *Session) MinesRemaining() int { return s.board.MinesRemaining() }

// Trigger returns the mine that ended the game, or NoTile.
func (s *Session) Trigger() int { return s.trigger }

// OpenMenu switches to MenuOpen, remembering the stage underneath.
func (s *Session) OpenMenu() {
	if s.stage == StageMenuOpen {
		return
	}
	s.menuBelow = s.stage
	s.stage = StageMenuOpen
}

// CloseMenu returns to the stage that was active when the menu opened.
func (s *Session) CloseMenu() {
	if s.stage != StageMenuOpen {
		return
	}
	s.stage = s.menuBelow
}

// PixelToGrid maps a surface position to a tile index, or NoTile.
func (s *Session) PixelToGrid(px, py int) int {
	return s.layout.PixelToGrid(s.board, px, py)
}

// OnPrimaryClick reveals the tile under (px, py). Clicks off the board are
// ignored.
func (s *Session) OnPrimaryClick(px, py int) (ClickResult, error) {
	i := s.PixelToGrid(px, py)
	if i == NoTile {
		return s.idle(NoTile), nil
	}
	return s.RevealAt(i)
}

// OnSecondaryClick flags the tile under (px, py). Clicks off the board are
// ignored.
func (s *Session) OnSecondaryClick(px, py int) (ClickResult, error) {
	i := s.PixelToGrid(px, py)
	if i == NoTile {
		return s.idle(NoTile), nil
	}
	return s.FlagAt(i)
}

// RevealAt runs one primary-click transaction on tile i: mine placement on
// the first click, reveal or chord, flood fill, then the win and loss checks.
func (s *Session) RevealAt(i int) (ClickResult, error) {
	if !s.board.InBoundsIndex(i) {
		return s.idle(i), outOfBounds("RevealAt", i, s.board.Len())
	}
	if s.stage != StageNotStarted && s.stage != StageInProgress {
		return s.idle(i), nil
	}

	if s.stage == StageNotStarted {
		if err := s.board.PlaceMines(i, s.rng); err != nil {
			return s.idle(i), err
		}
		s.stage = StageInProgress
		s.logger.Debug("mines placed", "origin", i, "zone", len(s.board.SafeZone(i)))
	}

	res := s.idle(i)
	if s.chording && s.board.tiles[i].Number() > 0 {
		chord, err := s.board.Chord(i)
		if err != nil {
			return res, err
		}
		res.Opened = chord.Opened
		if chord.Mine != NoTile {
			return s.lose(res, chord.Mine)
		}
		return s.afterOpen(res), nil
	}

	res.Reveal = s.board.reveal(i)
	switch res.Reveal {
	case RevealHitMine:
		return s.lose(res, i)
	case RevealRevealed:
		res.Opened = 1
		if s.board.content[i] == ContentEmpty {
			res.Opened += s.board.flood(i)
		}
	}
	return s.afterOpen(res), nil
}

// FlagAt runs one secondary-click transaction on tile i.
func (s *Session) FlagAt(i int) (ClickResult, error) {
	if !s.board.InBoundsIndex(i) {
		return s.idle(i), outOfBounds("FlagAt", i, s.board.Len())
	}
	if s.stage != StageNotStarted && s.stage != StageInProgress {
		return s.idle(i), nil
	}

	res := s.idle(i)
	var err error
	if s.questionMarks {
		res.Mark, err = s.board.CycleMark(i)
	} else {
		res.Mark, err = s.board.ToggleFlag(i)
	}
	return res, err
}

func (s *Session) idle(i int) ClickResult {
	return ClickResult{Index: i, Trigger: NoTile, Stage: s.stage}
}

func (s *Session) lose(res ClickResult, trigger int) (ClickResult, error) {
	if err := s.board.LoseGame(trigger); err != nil {
		return res, err
	}
	s.stage = StageLost
	s.trigger = trigger
	res.Reveal = RevealHitMine
	res.Trigger = trigger
	res.Stage = s.stage
	s.logger.Info("game lost", "preset", s.preset.ID, "trigger", trigger, "revealed", s.board.RevealedCount())
	return res, nil
}

func (s *Session) afterOpen(res ClickResult) ClickResult {
	if s.board.CheckWinCondition() {
		s.stage = StageWon
		s.logger.Info("game won", "preset", s.preset.ID, "flags", s.board.FlagCount())
	}
	res.Stage = s.stage
	return res
}
