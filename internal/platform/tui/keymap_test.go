package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-mines/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space reveals", tea.KeyMsg{Type: tea.KeySpace}, core.ActionReveal, false},
		{"flag", runeKey('f'), core.ActionFlag, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"menu", runeKey('m'), core.ActionMenu, false},
		{"tab opens menu", tea.KeyMsg{Type: tea.KeyTab}, core.ActionMenu, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"preset 2", runeKey('2'), core.ActionPreset2, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey('f'), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('z'), &frame))
	assert.True(t, frame.Has(core.ActionFlag))
	assert.Len(t, frame.Actions, 1)

	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 6, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 7, Y: 8, Action: tea.MouseActionMotion}, &frame)

	assert.Equal(t, []core.Click{
		{X: 3, Y: 4, Button: core.ButtonPrimary},
		{X: 5, Y: 6, Button: core.ButtonSecondary},
	}, frame.Clicks)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeySpace}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('f')))
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
