package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// MenuItem is one board offered by the picker.
type MenuItem struct {
	GameID string
	Name   string
	Width  int
	Height int
	Mines  int
}

// Density is the mine share of the board, in percent.
func (it MenuItem) Density() float64 {
	tiles := it.Width * it.Height
	if tiles == 0 {
		return 0
	}
	return 100 * float64(it.Mines) / float64(tiles)
}

// pickerKeys narrows KeyMap to what the picker responds to.
type pickerKeys struct{ KeyMap }

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	pickerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	pickerFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(0, 1)
)

// MenuResult is what the picker hands back to the CLI.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// MenuModel lists the boards in a table and waits for a choice.
type MenuModel struct {
	items  []MenuItem
	table  table.Model
	help   help.Model
	keys   *KeyMapper
	config core.RuntimeConfig
	result MenuResult
	done   bool
}

// NewMenuModel builds a picker over items sized to cfg.
func NewMenuModel(items []MenuItem, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:  items,
		help:   help.New(),
		keys:   NewKeyMapper(),
		config: cfg,
	}
	m.help.Width = cfg.ScreenW
	m.table = m.boardTable(0)
	return m
}

func (m MenuModel) boardTable(cursor int) table.Model {
	rows := make([]table.Row, 0, len(m.items))
	for _, it := range m.items {
		rows = append(rows, table.Row{
			it.Name,
			fmt.Sprintf("%dx%d", it.Width, it.Height),
			strconv.Itoa(it.Mines),
			fmt.Sprintf("%.1f%%", it.Density()),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Board", Width: 16},
			{Title: "Size", Width: 7},
			{Title: "Mines", Width: 6},
			{Title: "Density", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		// header, its rule, and one spare line
		table.WithHeight(core.Clamp(len(rows)+3, 3, core.Max(m.config.ScreenH-8, 3))),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("244")).
		BorderBottom(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("214"))
	t.SetStyles(st)
	t.SetCursor(cursor)
	return t
}

func (m MenuModel) Init() tea.Cmd { return nil }

// Update moves the table cursor and finishes on select or quit.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.boardTable(m.table.Cursor())

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.table.MoveUp(1)
		case MenuActionDown:
			m.table.MoveDown(1)
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			m.result = MenuResult{GameID: m.items[m.table.Cursor()].GameID}
			m.done = true
			return m, tea.Quit
		case MenuActionQuit:
			m.result = MenuResult{Quit: true}
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	w := m.config.ScreenW
	lines := []string{
		"",
		centerText(pickerTitle.Render("M I N E S W E E P E R"), w),
		"",
		centerText("Choose a board", w),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, pickerFrame.Render(m.table.View())),
		"",
		centerText(helpStyle.Render(m.help.View(pickerKeys{m.keys.Keys()})), w),
	}
	return strings.Join(lines, "\n") + "\n"
}

// Result reports the choice. ok is false while the picker is still open.
func (m MenuModel) Result() (res MenuResult, ok bool) {
	res = m.result
	res.Config = m.config
	return res, m.done
}

// centerText pads text to the middle of width, measuring without ANSI codes.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunMenu shows the picker full screen until a board is chosen or the
// user quits.
func RunMenu(items []MenuItem, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(items, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	if m, ok := final.(MenuModel); ok {
		if res, done := m.Result(); done {
			return res, nil
		}
	}
	// Interrupted without a choice.
	return MenuResult{Config: cfg, Quit: true}, nil
}
