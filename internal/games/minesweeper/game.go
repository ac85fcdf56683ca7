// Package minesweeper adapts the Minesweeper engine to the platform's Game
// interface: a keyboard cursor, mouse clicks, an elapsed-time HUD and an
// in-game preset menu.
package minesweeper

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath    string
	questionMarks *bool
	customBoard   *config.CustomConfig
	logger        = log.New(io.Discard)
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetQuestionMarks overrides the question-mark rule from the config file.
func SetQuestionMarks(on bool) {
	questionMarks = &on
}

// SetCustomBoard overrides the custom board from the config file.
// A negative mine count selects the default density.
func SetCustomBoard(width, height, mines int) {
	c := config.CustomConfig{Width: width, Height: height}
	if mines >= 0 {
		c.Mines = &mines
	}
	customBoard = &c
}

// SetLogger sets the logger handed to every new session.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// IDPrefix prefixes every registered board id.
const IDPrefix = "mines-"

// registeredPresets are the boards listed by the registry, in menu order.
var registeredPresets = []mscore.PresetID{
	mscore.PresetEasy,
	mscore.PresetMedium,
	mscore.PresetHard,
	mscore.PresetCustom,
}

func init() {
	for _, id := range registeredPresets {
		registry.Register(IDPrefix+string(id), func() registry.Game {
			return New(id)
		})
	}
}

// GameID returns the registry id for a preset.
func GameID(id mscore.PresetID) string {
	return IDPrefix + string(id)
}

const (
	hudHeight    = 3 // title, status line, blank
	footerHeight = 2
)

// Game implements registry.Game for Minesweeper.
type Game struct {
	preset mscore.PresetID
	cfg    config.MinesweeperConfig

	session *mscore.Session
	choices []mscore.Preset // menu entries

	screenW  int
	screenH  int
	tickRate int
	ticks    int

	cursor     int
	menuCursor int
	tooSmall   bool
	status     string
}

// New creates a game that starts on the given preset.
func New(preset mscore.PresetID) *Game {
	return &Game{
		preset: preset,
		cfg:    config.DefaultMinesweeperConfig(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == mscore.PresetCustom {
		return "Minesweeper (Custom)"
	}
	if p, err := config.ApplyMinesweeperPreset(g.cfg, string(g.preset)); err == nil {
		return fmt.Sprintf("Minesweeper (%s %dx%d)", p.Name, p.Width, p.Height)
	}
	return "Minesweeper"
}

// Reset loads the configuration and starts a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.ticks = 0
	g.status = ""

	loaded, err := config.LoadMinesweeper(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		g.status = "config error, using defaults"
	}
	g.cfg = loaded
	if questionMarks != nil {
		g.cfg.Rules.QuestionMarks = *questionMarks
	}
	if customBoard != nil {
		g.cfg.Custom = *customBoard
	}

	g.choices = append(g.cfg.PresetTable(), g.cfg.CustomPreset())

	preset, err := config.ApplyMinesweeperPreset(g.cfg, string(g.preset))
	if err != nil {
		logger.Warn("unknown preset, using default", "preset", g.preset, "err", err)
		preset, _ = config.ApplyMinesweeperPreset(g.cfg, "")
	}

	session, err := mscore.NewSession(preset, cfg.Seed,
		mscore.WithLogger(logger),
		mscore.WithQuestionMarks(g.cfg.Rules.QuestionMarks),
		mscore.WithChording(g.cfg.Rules.Chording),
	)
	if err != nil {
		// Config validation rejects bad boards, so this only trips on a
		// broken built-in table.
		logger.Error("cannot create board", "err", err)
		session, _ = mscore.NewSession(mscore.Presets()[0], cfg.Seed, mscore.WithLogger(logger))
	}
	g.session = session
	g.afterBoardChange()
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

// Session exposes the engine session.
func (g *Game) Session() *mscore.Session {
	return g.session
}

// Cursor returns the tile index under the keyboard cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

func (g *Game) afterBoardChange() {
	b := g.session.Board()
	g.cursor = b.ToIndex(b.Width()/2, b.Height()/2)
	g.ticks = 0
	g.relayout()
}

// relayout centers the board below the HUD and stores the geometry in the
// session so clicks map to tiles.
func (g *Game) relayout() {
	if g.session == nil {
		return
	}
	b := g.session.Board()
	l := g.cfg.BoardLayout()
	boardW := b.Width() * l.TileW
	boardH := b.Height() * l.TileH

	l.OriginX += (g.screenW - boardW) / 2
	l.OriginY += hudHeight + 1
	g.session.SetLayout(l)

	g.tooSmall = boardW+2 > g.screenW || hudHeight+boardH+2+footerHeight > g.screenH
}

// Step handles the input gathered since the previous tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Stage() == mscore.StageInProgress {
		g.ticks++
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.session.Stage() == mscore.StageMenuOpen {
		g.stepMenu(in)
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionMenu):
		g.openMenu()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionPreset1):
		g.switchPreset(0)
	case in.Has(core.ActionPreset2):
		g.switchPreset(1)
	case in.Has(core.ActionPreset3):
		g.switchPreset(2)
	}

	g.moveCursor(in)

	if in.Has(core.ActionReveal) || in.Has(core.ActionConfirm) {
		g.report(g.session.RevealAt(g.cursor))
	}
	if in.Has(core.ActionFlag) {
		g.report(g.session.FlagAt(g.cursor))
	}

	for _, c := range in.Clicks {
		if i := g.session.PixelToGrid(c.X, c.Y); i != mscore.NoTile {
			g.cursor = i
		}
		switch c.Button {
		case core.ButtonPrimary:
			g.report(g.session.OnPrimaryClick(c.X, c.Y))
		case core.ButtonSecondary:
			g.report(g.session.OnSecondaryClick(c.X, c.Y))
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	b := g.session.Board()
	x, y := b.ToCoordinate(g.cursor)
	if in.Has(core.ActionLeft) {
		x--
	}
	if in.Has(core.ActionRight) {
		x++
	}
	if in.Has(core.ActionUp) {
		y--
	}
	if in.Has(core.ActionDown) {
		y++
	}
	x = core.Clamp(x, 0, b.Width()-1)
	y = core.Clamp(y, 0, b.Height()-1)
	g.cursor = b.ToIndex(x, y)
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menuCursor = core.Clamp(g.menuCursor-1, 0, len(g.choices)-1)
	case in.Has(core.ActionDown):
		g.menuCursor = core.Clamp(g.menuCursor+1, 0, len(g.choices)-1)
	case in.Has(core.ActionConfirm), in.Has(core.ActionReveal):
		g.switchPreset(g.menuCursor)
		return
	case in.Has(core.ActionBack), in.Has(core.ActionMenu):
		g.session.CloseMenu()
		return
	}

	for _, c := range in.Clicks {
		if c.Button != core.ButtonPrimary {
			continue
		}
		if row, ok := g.menuRowAt(c.X, c.Y); ok {
			g.switchPreset(row)
			return
		}
	}
}

func (g *Game) openMenu() {
	g.menuCursor = 0
	current := g.session.Preset().ID
	for i, p := range g.choices {
		if p.ID == current {
			g.menuCursor = i
		}
	}
	g.session.OpenMenu()
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		g.status = err.Error()
		return
	}
	g.status = ""
	g.afterBoardChange()
}

// switchPreset starts a new board with choices[i].
func (g *Game) switchPreset(i int) {
	if i < 0 || i >= len(g.choices) {
		return
	}
	id, err := g.session.ApplyPreset(g.choices[i])
	if err != nil {
		g.status = err.Error()
		g.session.CloseMenu()
		return
	}
	g.preset = id
	g.status = ""
	g.afterBoardChange()
}

func (g *Game) report(_ mscore.ClickResult, err error) {
	if err != nil {
		logger.Error("click failed", "err", err)
		g.status = err.Error()
	}
}

// ElapsedSeconds returns the play time of the current round.
func (g *Game) ElapsedSeconds() int {
	return g.ticks / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stage := g.session.Stage()
	return core.GameState{
		Score:    g.session.Board().RevealedCount(),
		GameOver: stage.Finished(),
		Won:      stage == mscore.StageWon,
	}
}
