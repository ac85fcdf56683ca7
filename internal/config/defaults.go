package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		DefaultPreset: string(DifficultyEasy),
		Presets: []PresetConfig{
			{ID: "easy", Name: "Easy", Width: 12, Height: 8, Mines: 20},
			{ID: "medium", Name: "Medium", Width: 16, Height: 12, Mines: 36},
			{ID: "hard", Name: "Hard", Width: 24, Height: 16, Mines: 80},
		},
		Custom: CustomConfig{
			Width:  20,
			Height: 12,
		},
		Layout: LayoutConfig{
			TileWidth:  2,
			TileHeight: 1,
		},
		Rules: RulesConfig{
			QuestionMarks: false,
			Chording:      true,
		},
	}
}
