package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
)

// numberColors indexes the color of a revealed number by its value.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorMaroon,
	core.ColorCyan,
	core.ColorBrightWhite,
	core.ColorGray,
}

// TileGlyph returns the rune and color used to draw t.
func TileGlyph(t mscore.Tile) (rune, core.Color) {
	if n := t.Number(); n > 0 {
		return rune('0' + n), numberColors[n]
	}
	switch t {
	case mscore.TileUnrevealed:
		return '■', core.ColorGray
	case mscore.TileRevealed:
		return '·', core.ColorDefault
	case mscore.TileFlagged:
		return '⚑', core.ColorBrightRed
	case mscore.TileQuestionUnrevealed:
		return '?', core.ColorBrightYellow
	case mscore.TileQuestionRevealed:
		return '?', core.ColorGray
	case mscore.TileBombExposed:
		return '*', core.ColorWhite
	case mscore.TileBombTriggered:
		return '✸', core.ColorBrightRed
	case mscore.TileBombWrongFlag:
		return '✗', core.ColorMagenta
	}
	return ' ', core.ColorDefault
}

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.session.Layout()
	b := g.session.Board()
	boardW := b.Width() * l.TileW
	boardH := b.Height() * l.TileH

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(l.OriginX-1, l.OriginY-1, boardW+2, boardH+2), core.ColorGray)
	g.renderBoard(dst)
	g.renderFooter(dst, l.OriginY+boardH+1)
	g.renderOverlays(dst, core.NewRect(l.OriginX, l.OriginY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	b := g.session.Board()
	l := g.cfg.BoardLayout()
	need := fmt.Sprintf("Need %dx%d", b.Width()*l.TileW+2, hudHeight+b.Height()*l.TileH+2+footerHeight)
	dst.DrawTextCentered(y+1, need)
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.session.Preset()
	dst.DrawTextCenteredColored(0, fmt.Sprintf("MINESWEEPER  %s %dx%d", p.Name, p.Width, p.Height), core.ColorBrightWhite)

	mines := fmt.Sprintf("Mines: %3d", g.session.MinesRemaining())
	clock := fmt.Sprintf("Time: %03d", core.Min(g.ElapsedSeconds(), 999))
	status := g.stageLabel()
	line := fmt.Sprintf("%s   %s   %s", mines, clock, status)
	dst.DrawTextCentered(1, line)
}

func (g *Game) stageLabel() string {
	switch g.session.Stage() {
	case mscore.StageNotStarted:
		return "Ready"
	case mscore.StageInProgress:
		return "Playing"
	case mscore.StageLost:
		return "Lost"
	case mscore.StageWon:
		return "Won"
	case mscore.StageMenuOpen:
		return "Menu"
	}
	return ""
}

func (g *Game) renderBoard(dst *core.Screen) {
	b := g.session.Board()
	l := g.session.Layout()
	showCursor := g.session.Stage() == mscore.StageNotStarted || g.session.Stage() == mscore.StageInProgress

	for i := range b.Len() {
		px, py := l.TileOrigin(b, i)
		r, c := TileGlyph(b.Tile(i))
		if showCursor && i == g.cursor {
			c = core.ColorBrightYellow
			if l.TileW > 1 {
				dst.SetColored(px+l.TileW-1, py, '◂', core.ColorBrightYellow)
			} else {
				r = '▣'
			}
		}
		dst.SetColored(px, py, r, c)
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.status != "" {
		dst.DrawTextCenteredColored(y, g.status, core.ColorRed)
		return
	}
	if g.session.Stage() == mscore.StageNotStarted {
		dst.DrawTextCenteredColored(y, "Click or press Space to start", core.ColorGray)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch g.session.Stage() {
	case mscore.StageLost:
		g.drawOverlay(dst, board, core.ColorBrightRed, "BOOM!", "R: restart  M: menu")
	case mscore.StageWon:
		g.drawOverlay(dst, board, core.ColorBrightGreen, "CLEARED!",
			fmt.Sprintf("Time: %ds", g.ElapsedSeconds()), "R: restart  M: menu")
	case mscore.StageMenuOpen:
		g.renderMenu(dst)
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}
	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

const menuTitle = "Choose board"

func (g *Game) menuLabel(p mscore.Preset) string {
	return fmt.Sprintf("%-12s %2dx%-2d %3d mines", p.Name, p.Width, p.Height, p.Mines)
}

// menuBox returns the preset menu frame, centered on the screen.
func (g *Game) menuBox() core.Rect {
	w := len(menuTitle)
	for _, p := range g.choices {
		w = core.Max(w, len(g.menuLabel(p))+2)
	}
	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	return screen.Centered(w+4, len(g.choices)+4)
}

// menuRowAt maps a screen position to a menu entry.
func (g *Game) menuRowAt(x, y int) (int, bool) {
	box := g.menuBox()
	row := y - (box.Y + 2)
	if x <= box.X || x >= box.Right()-1 || row < 0 || row >= len(g.choices) {
		return 0, false
	}
	return row, true
}

func (g *Game) renderMenu(dst *core.Screen) {
	box := g.menuBox()
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextColored(box.X+(box.W-len(menuTitle))/2, box.Y+1, menuTitle, core.ColorBrightWhite)

	for i, p := range g.choices {
		prefix, c := "  ", core.ColorDefault
		if i == g.menuCursor {
			prefix, c = "> ", core.ColorBrightYellow
		}
		dst.DrawTextColored(box.X+2, box.Y+2+i, prefix+g.menuLabel(p), c)
	}
	dst.DrawTextColored(box.X+2, box.Bottom()-1, " Enter: play  Esc: back ", core.ColorGray)
}
