package core

import (
	"fmt"
	"math"
)

// PresetID names a difficulty preset.
type PresetID string

const (
	PresetEasy   PresetID = "easy"
	PresetMedium PresetID = "medium"
	PresetHard   PresetID = "hard"
	PresetCustom PresetID = "custom"
)

// Preset is a named board size and mine count.
type Preset struct {
	ID     PresetID
	Name   string
	Width  int
	Height int
	Mines  int
}

var builtinPresets = []Preset{
	{ID: PresetEasy, Name: "Easy", Width: 12, Height: 8, Mines: 20},
	{ID: PresetMedium, Name: "Medium", Width: 16, Height: 12, Mines: 36},
	{ID: PresetHard, Name: "Hard", Width: 24, Height: 16, Mines: 80},
}

// Presets returns a copy of the built-in preset table.
func Presets() []Preset {
	out := make([]Preset, len(builtinPresets))
	copy(out, builtinPresets)
	return out
}

// LookupPreset finds a preset by id in table.
func LookupPreset(table []Preset, id PresetID) (Preset, error) {
	for _, p := range table {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q: %w", id, ErrUnknownPreset)
}

// DefaultMineCount is the mine density used when a custom board gives no
// count: 2.35 * sqrt(tiles), capped so at least one tile stays safe.
func DefaultMineCount(width, height int) int {
	n := width * height
	if n <= 0 {
		return 0
	}
	mines := int(2.35 * math.Sqrt(float64(n)))
	if mines >= n {
		mines = n - 1
	}
	return mines
}

// CustomPreset builds a custom preset. mines < 0 selects DefaultMineCount.
func CustomPreset(width, height, mines int) Preset {
	if mines < 0 {
		mines = DefaultMineCount(width, height)
	}
	return Preset{
		ID:     PresetCustom,
		Name:   fmt.Sprintf("Custom %dx%d", width, height),
		Width:  width,
		Height: height,
		Mines:  mines,
	}
}

// ApplyPreset resets the board to the preset's size and returns its id.
func (b *Board) ApplyPreset(p Preset) (PresetID, error) {
	if err := b.Reset(p.Width, p.Height, p.Mines); err != nil {
		return "", fmt.Errorf("apply preset %q: %w", p.ID, err)
	}
	return p.ID, nil
}
