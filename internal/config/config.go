// Package config provides YAML-based configuration loading for board
// presets, screen layout and optional rules.
package config

// MinesweeperConfig contains all configuration for the Minesweeper game.
type MinesweeperConfig struct {
	DefaultPreset string         `yaml:"default_preset"`
	Presets       []PresetConfig `yaml:"presets"`
	Custom        CustomConfig   `yaml:"custom"`
	Layout        LayoutConfig   `yaml:"layout"`
	Rules         RulesConfig    `yaml:"rules"`
}

// PresetConfig defines one named board.
type PresetConfig struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// CustomConfig defines the "custom" board. A nil Mines selects the default
// density for the board size.
type CustomConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Mines  *int `yaml:"mines,omitempty"`
}

// LayoutConfig defines how tiles map to terminal cells.
type LayoutConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	OriginX    int `yaml:"origin_x"` // extra offset from the centered position
	OriginY    int `yaml:"origin_y"`
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	QuestionMarks bool `yaml:"question_marks"`
	Chording      bool `yaml:"chording"`
}
