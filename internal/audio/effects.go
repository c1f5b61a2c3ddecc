package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/quantum-jumper/internal/sim"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 //#nosec G404 -- audio noise
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero volume is silent
// since math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one segment of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
	gain float64
}

var cueNotes = map[string][]note{
	// rising three-step sweep
	sim.CueDimensionSwitch: {
		{440, 50 * time.Millisecond, WaveSine, 0.6},
		{660, 50 * time.Millisecond, WaveSine, 0.6},
		{990, 80 * time.Millisecond, WaveSine, 0.6},
	},
	sim.CueCollectShard: {
		{880, 70 * time.Millisecond, WaveSine, 0.7},
		{1320, 140 * time.Millisecond, WaveSine, 0.7},
	},
	sim.CuePlayerJump: {
		{330, 70 * time.Millisecond, WaveSquare, 0.25},
	},
	sim.CueHazardHit: {
		{0, 60 * time.Millisecond, WaveNoise, 0.5},
		{110, 140 * time.Millisecond, WaveSaw, 0.5},
	},
}

// Sound builds the streamer for a cue, or nil for unknown cues.
func Sound(cue string, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		shaped := NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate)
		parts = append(parts, newVolume(shaped, n.gain))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// Duration returns how long a cue plays.
func Duration(cue string) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.dur
	}
	return d
}
