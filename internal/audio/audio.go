// Package audio plays the short synthesized cues raised by the simulation.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays named cues. Implementations must be safe to call from the
// UI goroutine and must never block on audio output.
type Player interface {
	Play(cue string)
	Close()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(string) {}
func (Silent) Close()      {}

// Synth renders cues through the system speaker.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// New returns a speaker-backed player, or Silent when disabled.
// If the speaker cannot be opened the returned player is Silent and the
// error explains why, so callers may log it and carry on.
func New(enabled bool, volume float64) (Player, error) {
	if !enabled || volume <= 0 {
		return Silent{}, nil
	}
	s, err := NewSynth(volume)
	if err != nil {
		return Silent{}, err
	}
	return s, nil
}

// NewSynth initializes the speaker and starts an empty mixer.
func NewSynth(volume float64) (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	s := &Synth{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the cue on top of whatever is already sounding.
// Unknown cues are ignored.
func (s *Synth) Play(cue string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st := Sound(cue, sampleRate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences all cues.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.closed = true
}
