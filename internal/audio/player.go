// Package audio plays the night ambience and short event cues through the
// system speaker. Every operation is a no-op until Initialize succeeds, so a
// host without a sound device runs silently.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferTime = 100 * time.Millisecond
)

// Player owns the speaker mixer. The ambience loop sits behind a
// beep.Ctrl so it can be paused without losing its position.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambience    *beep.Ctrl
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume in [0, 1].
func NewPlayer(volume float64) *Player {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Start begins the ambience loop if it is not already running.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.ambience != nil {
		return
	}

	speaker.Lock()
	p.ambience = &beep.Ctrl{Streamer: withVolume(NewNightGenerator(sampleRate), p.volume)}
	p.mixer.Add(p.ambience)
	speaker.Unlock()
}

// Pause silences the ambience loop.
func (p *Player) Pause() {
	p.setPaused(true)
}

// Resume continues the ambience loop where it was paused.
func (p *Player) Resume() {
	p.setPaused(false)
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.ambience == nil {
		return
	}

	speaker.Lock()
	p.ambience.Paused = paused
	speaker.Unlock()
}

// IsPlaying reports whether the ambience loop is audible.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.ambience == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	return !p.ambience.Paused
}

// Cue plays a one-shot sound for a kernel event kind. Unknown kinds are ignored.
func (p *Player) Cue(kind string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := CueSound(kind, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Cleanup stops all sounds. The speaker stays open, so a later Start
// plays again without another Initialize.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.ambience != nil {
		p.ambience.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.ambience = nil
}
