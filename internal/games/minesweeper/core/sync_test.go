package core

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncSessionConcurrentClicks(t *testing.T) {
	medium, err := LookupPreset(Presets(), PresetMedium)
	require.NoError(t, err)
	s, err := NewSession(medium, 11)
	require.NoError(t, err)
	ss := NewSyncSession(s)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for k := 0; k < 200; k++ {
				i := rng.Intn(medium.Width * medium.Height)
				if k%3 == 0 {
					ss.FlagAt(i)
				} else {
					ss.RevealAt(i)
				}
				_ = ss.Snapshot()
			}
		}(int64(w))
	}
	wg.Wait()

	ss.Do(func(s *Session) {
		assert.NoError(t, s.Board().CheckCounters())
	})

	snap := ss.Snapshot()
	assert.Equal(t, medium.ID, snap.Preset)
	assert.Len(t, snap.Tiles, medium.Width*medium.Height)
	assert.NotEqual(t, StageNotStarted, snap.Stage)
}

func TestSyncSessionRestart(t *testing.T) {
	ss := NewSyncSession(newTestSession(t, CustomPreset(4, 4, 2)))

	_, err := ss.RevealAt(5)
	require.NoError(t, err)
	require.NoError(t, ss.Restart())

	snap := ss.Snapshot()
	assert.Equal(t, StageNotStarted, snap.Stage)
	assert.Equal(t, 2, snap.MinesRemaining)
	assert.Zero(t, snap.Revealed)

	id, err := ss.ApplyPreset(CustomPreset(6, 5, 4))
	require.NoError(t, err)
	assert.Equal(t, PresetCustom, id)
	snap = ss.Snapshot()
	assert.Equal(t, 6, snap.Width)
	assert.Equal(t, 5, snap.Height)
}
