package fireworks

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	audioSampleRate = beep.SampleRate(44100)
	burstDuration   = 450 * time.Millisecond
	// maxVoices caps overlapping bursts so a big volley does not clip.
	maxVoices = 8
)

// Audio plays a crackle for every burst. It implements EventSink, so it can be
// attached to a Show directly. A zero Audio, or one whose Init failed, is
// silent.
type Audio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewAudio creates a silent player. Call Init to open the speaker.
func NewAudio(seed uint64) *Audio {
	return &Audio{
		mixer: &beep.Mixer{},
		rng:   NewRand(seed),
	}
}

// Init opens the default output device and starts the mixer.
func (a *Audio) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Close silences all voices and closes the output device.
func (a *Audio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	a.initialized = false
}

// EmitEvent implements EventSink.
func (a *Audio) EmitEvent(ev Event) {
	if ev.Type == EventBurst {
		a.PlayBurst(ev.Color)
	}
}

// PlayBurst mixes one crackle pitched by the color's brightness.
func (a *Audio) PlayBurst(c Color) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	g := NewBurstGenerator(audioSampleRate, c, a.rng.Uint64())
	speaker.Lock()
	if a.mixer.Len() < maxVoices {
		a.mixer.Add(beep.Take(audioSampleRate.N(burstDuration), g))
	}
	speaker.Unlock()
}

// BurstGenerator streams a firework pop: a short low thump under a noise
// crackle, both decaying exponentially.
type BurstGenerator struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	freq  float64
	pos   int
	decay float64
}

// NewBurstGenerator creates a generator whose thump frequency rises with the
// brightness of c, between 60 and 180 Hz.
func NewBurstGenerator(sr beep.SampleRate, c Color, seed uint64) *BurstGenerator {
	rgb := c.RGB()
	lum := (0.299*float64(rgb[0]) + 0.587*float64(rgb[1]) + 0.114*float64(rgb[2])) / 255
	return &BurstGenerator{
		sr:    sr,
		rng:   NewRand(seed),
		freq:  60 + 120*lum,
		decay: 8,
	}
}

// Stream implements beep.Streamer. It never ends on its own; wrap it in
// beep.Take.
func (g *BurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-g.decay * t)

		thump := 0.5 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-3*g.decay*t)
		crackle := 0.0
		if g.rng.Float64() < 0.3 {
			crackle = (g.rng.Float64()*2 - 1) * 0.35
		}
		v := (thump + crackle) * env

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *BurstGenerator) Err() error {
	return nil
}
