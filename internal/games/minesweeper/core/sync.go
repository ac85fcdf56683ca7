package core

import "sync"

// Snapshot is a consistent copy of the state a renderer needs.
type Snapshot struct {
	Width          int
	Height         int
	Tiles          []Tile
	Stage          Stage
	Preset         PresetID
	MinesRemaining int
	Revealed       int
	Trigger        int
}

// SyncSession serialises access to a Session so that every click
// transaction (reveal, flood fill, win and loss) runs under one lock.
type SyncSession struct {
	mu sync.Mutex
	s  *Session
}

// NewSyncSession wraps s. The caller must not use s directly afterwards.
func NewSyncSession(s *Session) *SyncSession {
	return &SyncSession{s: s}
}

// RevealAt locks the session for one primary-click transaction.
func (ss *SyncSession) RevealAt(i int) (ClickResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.RevealAt(i)
}

// FlagAt locks the session for one secondary-click transaction.
func (ss *SyncSession) FlagAt(i int) (ClickResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.FlagAt(i)
}

// OnPrimaryClick locks the session and handles a primary click at (px, py).
func (ss *SyncSession) OnPrimaryClick(px, py int) (ClickResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.OnPrimaryClick(px, py)
}

// OnSecondaryClick locks the session and handles a secondary click at (px, py).
func (ss *SyncSession) OnSecondaryClick(px, py int) (ClickResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.OnSecondaryClick(px, py)
}

// ApplyPreset locks the session and resets it to p.
func (ss *SyncSession) ApplyPreset(p Preset) (PresetID, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.ApplyPreset(p)
}

// Restart locks the session and resets it with the current preset.
func (ss *SyncSession) Restart() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Restart()
}

// Snapshot copies the renderable state under the lock.
func (ss *SyncSession) Snapshot() Snapshot {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	b := ss.s.board
	return Snapshot{
		Width:          b.Width(),
		Height:         b.Height(),
		Tiles:          b.Tiles(),
		Stage:          ss.s.stage,
		Preset:         ss.s.preset.ID,
		MinesRemaining: b.MinesRemaining(),
		Revealed:       b.RevealedCount(),
		Trigger:        ss.s.trigger,
	}
}

// Do runs fn with exclusive access to the wrapped session.
func (ss *SyncSession) Do(fn func(s *Session)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	fn(ss.s)
}
