package fireworks

import (
	"math/rand/v2"
)

// Phase is the lifecycle stage of a Firework.
type Phase uint8

const (
	PhaseAscending Phase = iota // rocket is flying; no stars yet
	PhaseBurst                  // the last update killed the rocket and spawned its stars
	PhaseFading                 // stars are burning out
	PhaseSpent                  // nothing left to draw; the driver drops it
)

var phaseNames = [...]string{"ascending", "burst", "fading", "spent"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

const (
	// DefaultBurstSize is the number of stars a firework bursts into.
	DefaultBurstSize = 50

	// fireworkThrust scales both the sideways wobble and the lift.
	fireworkThrust = 25.0
	// fireworkCeiling is the height at which a rocket bursts regardless of
	// its remaining fuse.
	fireworkCeiling = 350.0
	// fireworkLaunchY is the launch height, just below the ground plane.
	fireworkLaunchY = -2.0
	// fireworkClimb is the initial upward speed.
	fireworkClimb = 5.0
)

var (
	launchArea   = Range{-70, 70}
	launchDrift  = Range{-1, 1}
	fireworkFuse = Range{4, 9}
	thrustWobble = Range{-2, 2}
)

// FireworkConfig tunes a firework. The zero value gives the standard
// 50-star burst without trails.
type FireworkConfig struct {
	// Stars is the burst size. Values <= 0 mean DefaultBurstSize.
	Stars int
	// InheritVelocity is the fraction of the rocket's velocity added to every
	// star. 0 throws stars out around the burst point only.
	InheritVelocity float64
	// Trails makes the rocket and its stars drop a fading trail every update.
	Trails bool
	// TrailLife is the lifetime of each trail in seconds. Values <= 0 mean 1.
	TrailLife float64
}

// Firework is a rocket that climbs under randomized thrust, bursts into stars
// when its fuse runs out or it reaches the ceiling, and drives those stars
// until they have all burned out.
type Firework struct {
	pos, vel Vec3
	color    Color
	age      float64
	alive    bool

	// starsAlive is the star count measured before pruning on the latest
	// update. It reads -1 until the burst.
	starsAlive int
	stars      []*Star
	trails     trailSet
	phase      Phase

	id  uint64
	rng *rand.Rand
	cfg FireworkConfig
}

// NewFirework creates an ascending firework at a random spot on the launch
// area. rng is kept for the thrust wobble and the burst.
func NewFirework(rng *rand.Rand, color Color, cfg FireworkConfig) *Firework {
	if cfg.Stars <= 0 {
		cfg.Stars = DefaultBurstSize
	}
	if cfg.TrailLife <= 0 {
		cfg.TrailLife = trailAge
	}
	return &Firework{
		pos: Vec3{
			X: launchArea.Random(rng),
			Y: fireworkLaunchY,
			Z: launchArea.Random(rng),
		},
		vel: Vec3{
			X: launchDrift.Random(rng),
			Y: fireworkClimb,
			Z: launchDrift.Random(rng),
		},
		color:      color,
		age:        fireworkFuse.Random(rng),
		alive:      true,
		starsAlive: -1,
		trails:     trailSet{life: cfg.TrailLife},
		phase:      PhaseAscending,
		rng:        rng,
		cfg:        cfg,
	}
}

// Position implements Mover.
func (f *Firework) Position() Vec3 { return f.pos }

// Velocity implements Mover.
func (f *Firework) Velocity() Vec3 { return f.vel }

// Forces implements Mover: a random sideways wobble plus lift proportional to
// the remaining fuse, so the rocket pushes hardest right after launch.
func (f *Firework) Forces() Vec3 {
	return Vec3{
		X: thrustWobble.Random(f.rng) * fireworkThrust,
		Y: fireworkThrust * f.age / 5,
		Z: thrustWobble.Random(f.rng) * fireworkThrust,
	}
}

// Update advances the firework by dt seconds. The update that first finds the
// rocket dead spawns its stars; every update after the rocket dies refreshes
// the star gauge, moves the stars and prunes the dead ones.
func (f *Firework) Update(dt float64) {
	f.trails.update(dt)

	f.age -= dt
	if f.age > 0 && f.pos.Y < fireworkCeiling && f.alive {
		if f.cfg.Trails {
			f.trails.drop(f.pos, f.color)
		}
		f.pos, f.vel = Integrate(f, dt)
		if !f.pos.IsFinite() || !f.vel.IsFinite() {
			f.alive = false
		}
	} else {
		f.alive = false
	}

	if f.alive {
		return
	}

	switch f.phase {
	case PhaseAscending:
		f.burst()
		f.phase = PhaseBurst
	case PhaseBurst:
		f.phase = PhaseFading
	}

	f.starsAlive = len(f.stars)
	for _, s := range f.stars {
		s.Update(dt)
	}
	f.pruneStars()

	if f.starsAlive == 0 {
		f.phase = PhaseSpent
	}
}

// burst spawns the star collection. A rocket whose state went non-finite has
// nowhere meaningful to burst and spawns nothing.
func (f *Firework) burst() {
	if !f.pos.IsFinite() || !f.vel.IsFinite() {
		return
	}
	f.stars = make([]*Star, 0, f.cfg.Stars)
	for range f.cfg.Stars {
		s := NewStar(f.rng, f.pos, f.vel, f.color, f.cfg.InheritVelocity)
		s.emitTrails = f.cfg.Trails
		s.trails.life = f.cfg.TrailLife
		f.stars = append(f.stars, s)
	}
}

func (f *Firework) pruneStars() {
	live := f.stars[:0]
	for _, s := range f.stars {
		if s.alive {
			live = append(live, s)
		}
	}
	clear(f.stars[len(live):])
	f.stars = live
}

// Render draws the trails and every star, then the rocket itself while it is
// still ascending.
func (f *Firework) Render(fr *Frame, t float64) {
	f.trails.render(fr, t)
	for _, s := range f.stars {
		s.Render(fr, t)
	}
	if !f.alive {
		return
	}
	p := fr.Project(f.pos, t)
	fr.PrintPoint(int(p.X), int(p.Y), 0, f.color.RGBA())
}

// Retained reports whether the driver should keep the firework: it is still
// ascending, or its latest star gauge is non-zero. The gauge lags pruning by
// one update, so a firework outlives its last star by exactly one update.
func (f *Firework) Retained() bool {
	return f.alive || f.starsAlive != 0
}

// IsAlive reports whether the rocket is still ascending.
func (f *Firework) IsAlive() bool { return f.alive }

// StarsAlive returns the star gauge: -1 before the burst, afterwards the star
// count measured before pruning on the latest update.
func (f *Firework) StarsAlive() int { return f.starsAlive }

// Phase returns the lifecycle stage.
func (f *Firework) Phase() Phase { return f.phase }

// Stars returns the live stars. The slice MUST NOT be mutated.
func (f *Firework) Stars() []*Star { return f.stars }

// Trails returns the rocket's live trails. The slice MUST NOT be mutated.
func (f *Firework) Trails() []*Trail { return f.trails.trails }

// Color returns the firework's color.
func (f *Firework) Color() Color { return f.color }

// Age returns the remaining fuse in seconds.
func (f *Firework) Age() float64 { return f.age }

// ID returns the identifier assigned by the Show, or 0.
func (f *Firework) ID() uint64 { return f.id }
