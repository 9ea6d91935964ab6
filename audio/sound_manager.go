package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the collection sounds through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager; volume is linear, 1 is unchanged.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it twice is harmless.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all queued sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayPickup plays the short chime for a collected sprite.
func (sm *SoundManager) PlayPickup() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*220), NewChimeGenerator(sampleRate, 880, 1320)))
}

// PlayLevelComplete plays a rising three-note phrase.
func (sm *SoundManager) PlayLevelComplete() {
	note := func(freq float64) beep.Streamer {
		return beep.Take(sampleRate.N(time.Millisecond*160), NewChimeGenerator(sampleRate, freq, freq*1.5))
	}
	sm.play(beep.Seq(note(523.25), note(659.25), note(783.99)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	vol := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(sm.volume, 1e-3)),
		Silent:   sm.volume <= 0,
	}
	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}
