package fireworks

import (
	"math/rand/v2"
	"time"
)

// groundRadius is the radius of the marker ring, matching the launch area.
const groundRadius = 70.0

// Show is the frame driver. It owns the frame, advances and renders the
// fireworks, drops the spent ones and launches new ones. A Show is not safe
// for concurrent use.
type Show struct {
	cfg   Config
	rng   *rand.Rand
	frame *Frame
	sink  EventSink
	debug bool

	fireworks []*Firework
	ground    []StaticPoint
	t         float64
	frames    uint64
	nextID    uint64
	stats     debugStats

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	screenshotQueue []string
	injectQueue     []launchRequest
	script          *ScriptRunner
}

// NewShow creates a show with an empty sky. rng is the only random source the
// show and its fireworks use; pass NewRand(seed) for a reproducible run.
// cfg is used as given; call Validate first when it comes from user input.
func NewShow(cfg Config, rng *rand.Rand) *Show {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	s := &Show{
		cfg:           cfg,
		rng:           rng,
		frame:         NewFrame(cfg.Width, cfg.Height),
		debug:         cfg.Debug,
		fireworks:     make([]*Firework, 0, max(cfg.MaxFireworks, 0)),
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if cfg.GroundPoints > 0 {
		s.ground = groundRing(rng, cfg.GroundPoints, groundRadius, White.Fade(0.35))
	}
	s.frame.Clear(cfg.Background)
	return s
}

// Step advances the show by dt seconds and renders the result into the frame.
// Each firework is updated and then rendered, in launch order.
func (s *Show) Step(dt float64) {
	if dt < 0 || !isFinite(dt) {
		dt = 0
	}
	if s.script != nil {
		s.script.step(s)
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.t += dt
	s.frames++
	s.frame.Clear(s.cfg.Background)
	for _, p := range s.ground {
		p.Render(s.frame, s.t)
	}

	for _, f := range s.fireworks {
		f.Update(dt)
		if f.phase == PhaseBurst {
			s.emit(EventBurst, f)
		}
		f.Render(s.frame, s.t)
	}

	live := s.fireworks[:0]
	for _, f := range s.fireworks {
		if f.Retained() {
			live = append(live, f)
			continue
		}
		s.emit(EventSpent, f)
	}
	clear(s.fireworks[len(live):])
	s.fireworks = live

	if s.debug {
		s.stats.simulateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.processInjected()
	s.spawn()

	if s.debug {
		s.stats.spawnTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.cfg.HUD {
		s.drawHUD()
	}
	s.flushScreenshots()

	if s.debug {
		s.stats.overlayTime = time.Since(t0)
		s.stats.fireworks, s.stats.stars, s.stats.trails = s.population()
		s.debugLog(s.stats)
	}
}

// spawn offers every free slot below MaxFireworks a launch with probability
// SpawnChance.
func (s *Show) spawn() {
	if len(s.cfg.Palette) == 0 {
		return
	}
	for range s.cfg.MaxFireworks - len(s.fireworks) {
		if s.rng.Float64() < s.cfg.SpawnChance {
			s.Launch(s.cfg.Palette[s.rng.IntN(len(s.cfg.Palette))])
		}
	}
}

// Launch adds a new ascending firework of the given color and returns it.
// Launch ignores MaxFireworks; the cap only throttles automatic launches.
func (s *Show) Launch(color Color) *Firework {
	f := NewFirework(s.rng, color, s.cfg.fireworkConfig())
	s.nextID++
	f.id = s.nextID
	s.fireworks = append(s.fireworks, f)
	s.emit(EventLaunch, f)
	return f
}

func (s *Show) emit(typ EventType, f *Firework) {
	if s.sink == nil {
		return
	}
	ev := Event{
		Type:       typ,
		FireworkID: f.id,
		Color:      f.color,
		Position:   f.pos,
		Time:       s.t,
	}
	if typ == EventBurst {
		ev.Stars = len(f.stars)
	}
	s.sink.EmitEvent(ev)
}

// population counts fireworks, live stars and live trails.
func (s *Show) population() (fireworks, stars, trails int) {
	for _, f := range s.fireworks {
		stars += len(f.stars)
		trails += len(f.trails.trails)
		for _, st := range f.stars {
			trails += len(st.trails.trails)
		}
	}
	return len(s.fireworks), stars, trails
}

// Frame returns the frame the show renders into. The frame is reused; copy
// Pix to keep a snapshot.
func (s *Show) Frame() *Frame {
	return s.frame
}

// Fireworks returns the current population. The returned slice MUST NOT be
// mutated.
func (s *Show) Fireworks() []*Firework {
	return s.fireworks
}

// Time returns the show time in seconds.
func (s *Show) Time() float64 {
	return s.t
}

// Frames returns the number of completed Steps.
func (s *Show) Frames() uint64 {
	return s.frames
}

// Config returns the show's configuration.
func (s *Show) Config() Config {
	return s.cfg
}

// SetEventSink sets the receiver for lifecycle events. nil disables events.
func (s *Show) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-frame timing logs on stderr.
func (s *Show) SetDebugMode(enabled bool) {
	s.debug = enabled
}
