package config

import (
	"errors"
	"fmt"
	"strings"

	mscore "github.com/vovakirdan/tui-mines/internal/games/minesweeper/core"
)

// DifficultyPreset is a preset name as typed on the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// aliases maps the classic difficulty names onto preset ids.
var aliases = map[string]DifficultyPreset{
	"beginner":     DifficultyEasy,
	"normal":       DifficultyMedium,
	"intermediate": DifficultyMedium,
	"expert":       DifficultyHard,
}

// ParseDifficulty normalises a user-supplied preset name.
// Unknown names are returned lower-cased so config-defined ids still match.
func ParseDifficulty(s string) DifficultyPreset {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := aliases[name]; ok {
		return p
	}
	return DifficultyPreset(name)
}

// PresetTable converts the configured presets to engine presets.
func (c MinesweeperConfig) PresetTable() []mscore.Preset {
	out := make([]mscore.Preset, 0, len(c.Presets))
	for _, p := range c.Presets {
		out = append(out, mscore.Preset{
			ID:     mscore.PresetID(p.ID),
			Name:   p.Name,
			Width:  p.Width,
			Height: p.Height,
			Mines:  p.Mines,
		})
	}
	return out
}

// CustomPreset builds the configured custom board.
func (c MinesweeperConfig) CustomPreset() mscore.Preset {
	mines := -1
	if c.Custom.Mines != nil {
		mines = *c.Custom.Mines
	}
	return mscore.CustomPreset(c.Custom.Width, c.Custom.Height, mines)
}

// ApplyMinesweeperPreset resolves a preset name against the config.
// An empty name selects DefaultPreset.
func ApplyMinesweeperPreset(cfg MinesweeperConfig, name string) (mscore.Preset, error) {
	if strings.TrimSpace(name) == "" {
		name = cfg.DefaultPreset
	}
	preset := ParseDifficulty(name)
	if preset == DifficultyCustom {
		return cfg.CustomPreset(), nil
	}
	return mscore.LookupPreset(cfg.PresetTable(), mscore.PresetID(preset))
}

// BoardLayout converts the layout section to engine geometry. Origin offsets
// are added to the centered board position by the caller.
func (c MinesweeperConfig) BoardLayout() mscore.Layout {
	l := mscore.DefaultLayout()
	if c.Layout.TileWidth > 0 {
		l.TileW = c.Layout.TileWidth
	}
	if c.Layout.TileHeight > 0 {
		l.TileH = c.Layout.TileHeight
	}
	l.OriginX = c.Layout.OriginX
	l.OriginY = c.Layout.OriginY
	return l
}

// Validate checks every preset and the custom board.
func (c MinesweeperConfig) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Presets))
	if len(c.Presets) == 0 {
		errs = append(errs, errors.New("no presets defined"))
	}
	for _, p := range c.Presets {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("preset %q: empty id", p.Name))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("preset %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if err := checkBoard(p.Width, p.Height, p.Mines); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", p.ID, err))
		}
	}
	if c.DefaultPreset != "" && c.DefaultPreset != string(DifficultyCustom) && !seen[string(ParseDifficulty(c.DefaultPreset))] {
		errs = append(errs, fmt.Errorf("default_preset %q: %w", c.DefaultPreset, mscore.ErrUnknownPreset))
	}
	custom := c.CustomPreset()
	if err := checkBoard(custom.Width, custom.Height, custom.Mines); err != nil {
		errs = append(errs, fmt.Errorf("custom: %w", err))
	}
	if c.Layout.TileWidth < 0 || c.Layout.TileHeight < 0 {
		errs = append(errs, fmt.Errorf("layout: negative tile size %dx%d", c.Layout.TileWidth, c.Layout.TileHeight))
	}
	return errors.Join(errs...)
}

func checkBoard(width, height, mines int) error {
	if width <= 0 || height <= 0 || mines < 0 || mines >= width*height {
		return &mscore.DimensionsError{Width: width, Height: height, Mines: mines}
	}
	return nil
}
