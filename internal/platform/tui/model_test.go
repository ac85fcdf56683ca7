package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// stubGame records what the model hands it.
type stubGame struct {
	resets int
	cfg    core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.Clicks = append(frame.Clicks, in.Clicks...)
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState { return g.state }

// resizableStub keeps its state across resizes.
type resizableStub struct {
	stubGame
	w, h int
}

func (g *resizableStub) Resize(w, h int) {
	g.w, g.h = w, h
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig(), nil)
	m.Init()

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 80, g.cfg.ScreenW)
	assert.Equal(t, 23, g.cfg.ScreenH)
	assert.Equal(t, int64(1), g.cfg.Seed)
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, runeKey('f'))
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd)

	require.Len(t, g.frames, 1)
	assert.True(t, g.frames[0].Has(core.ActionFlag))
	assert.Equal(t, []core.Click{{X: 10, Y: 5, Button: core.ButtonPrimary}}, g.frames[0].Clicks)

	// The frame is cleared after each step.
	_, _ = update(t, m, TickMsg{})
	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[1].Empty())
}

func TestModelResize(t *testing.T) {
	g := &resizableStub{}
	m := NewModel(g, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 1, g.resets, "resizable games keep their state")
	assert.Equal(t, 100, g.w)
	assert.Equal(t, 39, g.h)
	assert.Equal(t, 39, m.screen.Height())

	plain := &stubGame{}
	pm := NewModel(plain, testConfig(), nil)
	pm.Init()
	_, _ = update(t, pm, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 2, plain.resets)
	assert.Equal(t, 39, plain.cfg.ScreenH)
}

func TestModelHelpToggleShrinksGame(t *testing.T) {
	g := &resizableStub{}
	m := NewModel(g, testConfig(), nil)
	m.Init()

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 24-m.helpRows(), g.h)
	assert.Greater(t, m.helpRows(), 1)

	_, _ = update(t, m, runeKey('?'))
	assert.Equal(t, 23, g.h)
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), nil)
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelLogsRoundEnd(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	g := &stubGame{}
	m := NewModel(g, testConfig(), logger)
	m.Init()

	g.state = core.GameState{GameOver: true, Won: true, Score: 76}
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("round finished")))
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), nil)
	m.Init()

	view := m.View()
	assert.Contains(t, view, "stub board")
	assert.Contains(t, view, "reveal")
}
