// Package registry maps board IDs such as "mines-easy" to game factories.
// Boards register from init(), so the CLI and the picker never import a
// variant by name.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Game is what the terminal front end drives once per tick.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh round sized to cfg.ScreenW x cfg.ScreenH and
	// seeded with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step consumes the input gathered since the previous tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered board for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = map[string]int{}
)

// Register adds f under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := byID[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	byID[id] = len(entries)
	entries = append(entries, entry{info: GameInfo{ID: id, Title: title}, factory: f})
}

// List returns the registered boards in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	return out
}

// Create builds a new instance of the board registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := byID[id]
	return ok
}
