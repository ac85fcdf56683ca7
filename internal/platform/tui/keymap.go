package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// KeyMap holds the key bindings for the board and the preset menu.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Reveal     key.Binding
	Flag       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Menu       key.Binding
	Restart    key.Binding
	Preset1    key.Binding
	Preset2    key.Binding
	Preset3    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or hjkl to move, space
// to reveal, f to flag.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "right")),
		Reveal:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "reveal")),
		Flag:       key.NewBinding(key.WithKeys("f", "x"), key.WithHelp("f", "flag")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Menu:       key.NewBinding(key.WithKeys("m", "tab"), key.WithHelp("m", "boards")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Preset1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Preset2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Preset3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Menu, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Confirm, k.Back},
		{k.Preset1, k.Preset2, k.Preset3, k.Menu},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// actionBinding pairs a binding with the action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys    KeyMap
	actions []actionBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper for the given bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		actions: []actionBinding{
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Reveal, core.ActionReveal},
			{keys.Flag, core.ActionFlag},
			{keys.Confirm, core.ActionConfirm},
			{keys.Back, core.ActionBack},
			{keys.Menu, core.ActionMenu},
			{keys.Restart, core.ActionRestart},
			{keys.Preset1, core.ActionPreset1},
			{keys.Preset2, core.ActionPreset2},
			{keys.Preset3, core.ActionPreset3},
		},
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, ab := range km.actions {
		if key.Matches(msg, ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left and right button presses as clicks.
// Releases, motion and wheel events are dropped.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.AddClick(msg.X, msg.Y, core.ButtonPrimary)
	case tea.MouseButtonRight:
		frame.AddClick(msg.X, msg.Y, core.ButtonSecondary)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.keys.Quit), key.Matches(msg, km.keys.Back):
		return MenuActionQuit
	case key.Matches(msg, km.keys.Up):
		return MenuActionUp
	case key.Matches(msg, km.keys.Down):
		return MenuActionDown
	case key.Matches(msg, km.keys.Confirm), key.Matches(msg, km.keys.Reveal):
		return MenuActionSelect
	}
	return MenuActionNone
}
