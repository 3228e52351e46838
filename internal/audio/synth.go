// Package audio generates the retro sound cues played by programs.
//
// Synth is an io.Reader producing 16-bit little-endian stereo PCM for an
// ebiten audio player.
package audio

import (
	"math"
	"math/rand/v2"
	"sync"
)

// SampleRate is the rate Synth output is generated at.
const SampleRate = 44100

// Cue names a sound effect.
type Cue int

const (
	CueLaser  Cue = iota // falling square sweep
	CueHit               // short noise crackle
	CueImpact            // long low rumble
)

func (c Cue) String() string {
	switch c {
	case CueLaser:
		return "laser"
	case CueHit:
		return "hit"
	case CueImpact:
		return "impact"
	default:
		return "unknown"
	}
}

// Trigger starts sound cues. Implementations must not block.
type Trigger interface {
	Trigger(c Cue)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Trigger(Cue) {}

type voice struct {
	startFreq float64
	endFreq   float64
	noise     float64 // 0 = pure square, 1 = pure noise
	vol       float64
	length    int // samples
	pos       int
	phase     float64
}

// Synth mixes square-wave and noise voices. Trigger is called from the game
// loop while Read runs on the audio player's goroutine.
type Synth struct {
	mu     sync.Mutex
	volume float64
	voices []voice
	rng    *rand.Rand
}

// NewSynth returns a silent synth with the given master volume in [0, 1].
func NewSynth(volume float64, rng *rand.Rand) *Synth {
	return &Synth{volume: volume, rng: rng}
}

// Trigger starts the voice for c.
func (s *Synth) Trigger(c Cue) {
	var v voice
	switch c {
	case CueLaser:
		v = voice{startFreq: 1200, endFreq: 300, vol: 0.20, length: samples(0.15)}
	case CueHit:
		v = voice{startFreq: 180, endFreq: 90, noise: 0.8, vol: 0.25, length: samples(0.12)}
	case CueImpact:
		v = voice{startFreq: 70, endFreq: 30, noise: 0.6, vol: 0.35, length: samples(0.9)}
	default:
		return
	}
	s.mu.Lock()
	s.voices = append(s.voices, v)
	s.mu.Unlock()
}

// Active returns the number of voices still sounding.
func (s *Synth) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

// Read fills buf with whole stereo frames and always reports success; when
// nothing is playing it produces silence.
func (s *Synth) Read(buf []byte) (int, error) {
	n := len(buf) - len(buf)%4

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i += 4 {
		mix := 0.0
		for j := range s.voices {
			mix += s.next(&s.voices[j])
		}
		v := int16(clamp(mix*s.volume, -1, 1) * 32767)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)

		if i%256 == 0 {
			s.reap()
		}
	}
	s.reap()
	return n, nil
}

func (s *Synth) next(v *voice) float64 {
	if v.pos >= v.length {
		return 0
	}
	t := float64(v.pos) / float64(v.length)
	freq := v.startFreq + (v.endFreq-v.startFreq)*t
	v.phase += freq / SampleRate
	v.phase -= math.Floor(v.phase)
	v.pos++

	square := 1.0
	if v.phase >= 0.5 {
		square = -1
	}
	sample := square*(1-v.noise) + (s.rng.Float64()*2-1)*v.noise
	return sample * v.vol * (1 - t)
}

func (s *Synth) reap() {
	n := 0
	for _, v := range s.voices {
		if v.pos < v.length {
			s.voices[n] = v
			n++
		}
	}
	s.voices = s.voices[:n]
}

func samples(seconds float64) int { return int(seconds * SampleRate) }

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
