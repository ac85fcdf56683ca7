package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 30)
	Seed     int64 // RNG seed for reproducible boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is reported by Game.State() to the platform.
type GameState struct {
	Score    int  // Tiles opened in the current round
	GameOver bool // Round finished, won or lost
	Won      bool
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
