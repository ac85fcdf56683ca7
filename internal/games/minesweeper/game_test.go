package minesweeper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

func newTestGame(t *testing.T, preset mscore.PresetID, w, h int) *Game {
	t.Helper()
	g := New(preset)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 30, Seed: 7})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func click(g *Game, i int, b core.MouseButton) core.StepResult {
	s := g.Session()
	x, y := s.Layout().TileOrigin(s.Board(), i)
	in := core.NewInputFrame()
	in.AddClick(x, y, b)
	return g.Step(in)
}

func TestRegistered(t *testing.T) {
	for _, id := range registeredPresets {
		if !registry.Exists(GameID(id)) {
			t.Errorf("%s not registered", GameID(id))
		}
	}

	g, err := registry.Create("mines-easy")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.Contains(g.Title(), "Easy") {
		t.Errorf("Title = %q, want it to name the preset", g.Title())
	}
}

func TestFirstRevealStartsGame(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	if got := g.Session().Stage(); got != mscore.StageNotStarted {
		t.Fatalf("stage after reset = %v", got)
	}

	res := press(g, core.ActionReveal)

	if g.Session().Stage() == mscore.StageLost || res.State.GameOver && !res.State.Won {
		t.Fatal("first reveal lost the game")
	}
	if !g.Session().Board().Tile(g.Cursor()).IsOpen() {
		t.Error("tile under cursor is still closed")
	}
	if res.State.Score == 0 {
		t.Error("score should count opened tiles")
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	b := g.Session().Board()

	for range 20 {
		press(g, core.ActionLeft, core.ActionUp)
	}
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", g.Cursor())
	}

	for range 20 {
		press(g, core.ActionRight, core.ActionDown)
	}
	if g.Cursor() != b.Len()-1 {
		t.Errorf("cursor = %d, want %d", g.Cursor(), b.Len()-1)
	}
}

func TestClicksMapToTiles(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	b := g.Session().Board()

	click(g, 0, core.ButtonPrimary)
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d after click on tile 0", g.Cursor())
	}
	if !b.Tile(0).IsOpen() {
		t.Fatal("clicked tile is still closed")
	}
	if g.Session().Stage() != mscore.StageInProgress {
		t.Skip("board cleared by the first click")
	}

	closed := -1
	for i := range b.Len() {
		if b.Tile(i) == mscore.TileUnrevealed {
			closed = i
			break
		}
	}
	click(g, closed, core.ButtonSecondary)
	if b.Tile(closed) != mscore.TileFlagged {
		t.Errorf("tile %d = %v, want Flagged", closed, b.Tile(closed))
	}
	if g.Session().MinesRemaining() != 19 {
		t.Errorf("MinesRemaining = %d, want 19", g.Session().MinesRemaining())
	}

	// Clicks on the border are ignored.
	in := core.NewInputFrame()
	in.AddClick(0, 0, core.ButtonPrimary)
	g.Step(in)
	if g.Session().Stage() != mscore.StageInProgress {
		t.Errorf("off-board click changed stage to %v", g.Session().Stage())
	}
}

func TestHittingMineShowsOverlay(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	press(g, core.ActionReveal)
	b := g.Session().Board()

	mine := -1
	for i := range b.Len() {
		if b.Content(i).IsMine() {
			mine = i
			break
		}
	}
	res := click(g, mine, core.ButtonPrimary)
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, want lost", res.State)
	}
	if g.Session().Trigger() != mine {
		t.Errorf("trigger = %d, want %d", g.Session().Trigger(), mine)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOOM!") {
		t.Error("lost overlay not rendered")
	}
	if b.Tile(mine) != mscore.TileBombTriggered {
		t.Errorf("trigger tile = %v, want BombTriggered", b.Tile(mine))
	}
}

func TestMenuSwitchesPreset(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)

	press(g, core.ActionMenu)
	if g.Session().Stage() != mscore.StageMenuOpen {
		t.Fatalf("stage = %v, want MenuOpen", g.Session().Stage())
	}
	press(g, core.ActionDown)
	press(g, core.ActionConfirm)

	if g.ID() != "mines-medium" {
		t.Errorf("ID = %q, want mines-medium", g.ID())
	}
	p := g.Session().Preset()
	if p.Width != 16 || p.Height != 12 || p.Mines != 36 {
		t.Errorf("preset = %+v", p)
	}
	if g.Session().Stage() != mscore.StageNotStarted {
		t.Errorf("stage = %v, want NotStarted", g.Session().Stage())
	}
}

func TestMenuBackRestoresStage(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	press(g, core.ActionReveal)
	before := g.Session().Stage()

	press(g, core.ActionMenu)
	press(g, core.ActionBack)

	if g.Session().Stage() != before {
		t.Errorf("stage = %v, want %v", g.Session().Stage(), before)
	}
}

func TestMenuClickSelectsRow(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	press(g, core.ActionMenu)

	box := g.menuBox()
	in := core.NewInputFrame()
	in.AddClick(box.X+3, box.Y+2+2, core.ButtonPrimary)
	g.Step(in)

	if g.Session().Preset().ID != mscore.PresetHard {
		t.Errorf("preset = %s, want hard", g.Session().Preset().ID)
	}
}

func TestPresetHotkeys(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)

	press(g, core.ActionPreset3)
	b := g.Session().Board()
	if b.Width() != 24 || b.Height() != 16 || b.MineCount() != 80 {
		t.Errorf("board = %dx%d/%d, want 24x16/80", b.Width(), b.Height(), b.MineCount())
	}
	if g.tooSmall {
		t.Error("hard board should fit in 80x24")
	}
}

func TestRestartClearsBoard(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	press(g, core.ActionFlag)
	if g.Session().MinesRemaining() != 19 {
		t.Fatalf("MinesRemaining = %d, want 19", g.Session().MinesRemaining())
	}

	press(g, core.ActionRestart)

	if g.Session().MinesRemaining() != 20 {
		t.Errorf("MinesRemaining = %d after restart", g.Session().MinesRemaining())
	}
	if g.Session().Stage() != mscore.StageNotStarted {
		t.Errorf("stage = %v after restart", g.Session().Stage())
	}
}

func TestTimerRunsOnlyWhilePlaying(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	idle := core.NewInputFrame()

	for range 90 {
		g.Step(idle)
	}
	if g.ElapsedSeconds() != 0 {
		t.Fatalf("timer ran before the first click: %ds", g.ElapsedSeconds())
	}

	press(g, core.ActionReveal)
	if g.Session().Stage() != mscore.StageInProgress {
		t.Skip("board cleared by the first click")
	}
	for range 60 {
		g.Step(idle)
	}
	if g.ElapsedSeconds() != 2 {
		t.Errorf("ElapsedSeconds = %d, want 2", g.ElapsedSeconds())
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	press(g, core.ActionReveal)
	revealed := g.Session().Board().RevealedCount()

	g.Resize(100, 30)

	if g.Session().Board().RevealedCount() != revealed {
		t.Error("resize reset the board")
	}
	want := (100 - 12*2) / 2
	if g.Session().Layout().OriginX != want {
		t.Errorf("OriginX = %d, want %d", g.Session().Layout().OriginX, want)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "MINESWEEPER") {
		t.Errorf("row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Mines:  20") {
		t.Errorf("row 1 = %q", screen.Row(1))
	}
	if !strings.Contains(screen.String(), "Click or press Space to start") {
		t.Error("start hint missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, mscore.PresetEasy, 20, 10)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	// Input is ignored until the board fits.
	press(g, core.ActionReveal)
	if g.Session().Stage() != mscore.StageNotStarted {
		t.Errorf("stage = %v", g.Session().Stage())
	}
}

func TestTileGlyph(t *testing.T) {
	for n := 1; n <= 8; n++ {
		r, c := TileGlyph(mscore.NumberTile(n))
		if r != rune('0'+n) {
			t.Errorf("NumberTile(%d) glyph = %q", n, r)
		}
		if c != numberColors[n] {
			t.Errorf("NumberTile(%d) color = %v", n, c)
		}
	}
	if r, _ := TileGlyph(mscore.TileFlagged); r != '⚑' {
		t.Errorf("flag glyph = %q", r)
	}
	if r, _ := TileGlyph(mscore.TileUnrevealed); r != '■' {
		t.Errorf("unrevealed glyph = %q", r)
	}
}

func TestCustomBoardOverride(t *testing.T) {
	SetCustomBoard(10, 6, 7)
	t.Cleanup(func() { customBoard = nil })

	g := newTestGame(t, mscore.PresetCustom, 80, 24)
	b := g.Session().Board()
	if b.Width() != 10 || b.Height() != 6 || b.MineCount() != 7 {
		t.Errorf("board = %dx%d/%d, want 10x6/7", b.Width(), b.Height(), b.MineCount())
	}
	if g.ID() != "mines-custom" {
		t.Errorf("ID = %q", g.ID())
	}

	SetCustomBoard(10, 10, -1)
	g = newTestGame(t, mscore.PresetCustom, 80, 24)
	if got, want := g.Session().Board().MineCount(), mscore.DefaultMineCount(10, 10); got != want {
		t.Errorf("MineCount = %d, want %d", got, want)
	}
}
