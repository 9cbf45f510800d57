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
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100

	clickDurationMs      = 30
	clickFrequencyHz     = 2400.0
	clickAmplitude       = 0.25
	clickDecayPerSec     = 180.0
	errorBuzzDurationMs  = 150
	errorBuzzFrequencyHz = 120.0
	errorBuzzAmplitude   = 0.2
	errorBuzzAttackS     = 0.02
)

// SoundManager plays short interface feedback sounds. All Play methods are
// no-ops until Initialize succeeds, so a host without an audio device runs
// silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        *effects.Gain
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at full volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// SetVolume sets output volume in [0, 1]; values outside are clamped
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = math.Max(0, math.Min(1, v))
	if sm.gain != nil {
		sm.gain.Gain = gainFor(sm.volume)
	}
}

// Volume returns the current volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// gainFor maps volume to effects.Gain, which scales by 1+Gain
func gainFor(volume float64) float64 {
	return volume - 1
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	sm.gain = &effects.Gain{Streamer: sm.mixer, Gain: gainFor(sm.volume)}
	speaker.Play(sm.gain)
	sm.initialized = true
	return nil
}

// Cleanup silences pending sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; an empty mixer keeps it silent
	sm.mixer.Clear()
	sm.initialized = false
}

// PlayClick plays a short tick for an activated widget
func (sm *SoundManager) PlayClick() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*clickDurationMs), NewClickGenerator(sampleRate, clickFrequencyHz)))
}

// PlayError plays a low buzz for rejected input
func (sm *SoundManager) PlayError() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*errorBuzzDurationMs), NewBuzzGenerator(sampleRate, errorBuzzFrequencyHz)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ClickGenerator generates an exponentially decaying sine tick
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click generator
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := clickAmplitude * math.Exp(-t*clickDecayPerSec) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh tone
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in to avoid a click at onset
		envelope := math.Min(t/errorBuzzAttackS, 1.0)
		sample *= envelope * errorBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
