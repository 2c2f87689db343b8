package fireworks

import (
	"math"
	"math/rand/v2"
)

const (
	gravity = -9.81

	// starDrag is the quadratic air resistance coefficient.
	starDrag = 0.01
	// starGravityScale damps gravity so bursts hang in the air longer.
	starGravityScale = 0.2
)

var (
	starSpeed = Range{-20, 20}
	starAge   = Range{1.5, 2.0}
)

// Star is a fragment thrown out when a firework bursts. It falls under
// gravity, slows under drag and dies when its age runs out.
type Star struct {
	pos, vel Vec3
	color    Color
	age      float64
	alive    bool

	trails     trailSet
	emitTrails bool
}

// NewStar creates a star at pos with a random velocity and age. inherit
// scales how much of parentVel is added to the random velocity; 0 ignores it.
func NewStar(rng *rand.Rand, pos, parentVel Vec3, color Color, inherit float64) *Star {
	vel := Vec3{
		X: starSpeed.Random(rng),
		Y: starSpeed.Random(rng),
		Z: starSpeed.Random(rng),
	}
	if inherit != 0 {
		vel = vel.Add(parentVel.Scale(inherit))
	}
	return &Star{
		pos:    pos,
		vel:    vel,
		color:  color,
		age:    starAge.Random(rng),
		alive:  true,
		trails: trailSet{life: trailAge},
	}
}

// Position implements Mover.
func (s *Star) Position() Vec3 { return s.pos }

// Velocity implements Mover.
func (s *Star) Velocity() Vec3 { return s.vel }

// Forces implements Mover: quadratic drag against each velocity component
// plus damped gravity.
func (s *Star) Forces() Vec3 {
	v := s.vel
	return Vec3{
		X: -starDrag * v.X * math.Abs(v.X),
		Y: -starDrag*v.Y*math.Abs(v.Y) + gravity*starGravityScale,
		Z: -starDrag * v.Z * math.Abs(v.Z),
	}
}

// Update ages the star and moves it one step. A star still moves on the
// update that kills it.
func (s *Star) Update(dt float64) {
	s.trails.update(dt)

	s.age -= dt
	if s.age <= 0 {
		s.alive = false
	}
	if s.emitTrails && s.alive {
		s.trails.drop(s.pos, s.color)
	}
	s.pos, s.vel = Integrate(s, dt)
	if !s.pos.IsFinite() || !s.vel.IsFinite() {
		s.alive = false
	}
}

// Render draws the star's trails and then the star itself, shrinking as it
// ages. Dead stars draw nothing.
func (s *Star) Render(f *Frame, t float64) {
	if !s.alive {
		return
	}
	s.trails.render(f, t)
	p := f.Project(s.pos, t)
	r := int(math.Floor(s.age / 1.5))
	f.PrintPoint(int(p.X), int(p.Y), r, s.color.RGBA())
}

// IsAlive reports whether the star is still burning.
func (s *Star) IsAlive() bool { return s.alive }

// Age returns the remaining age in seconds.
func (s *Star) Age() float64 { return s.age }

// Color returns the star's color.
func (s *Star) Color() Color { return s.color }

// Trails returns the star's live trails. The slice MUST NOT be mutated.
func (s *Star) Trails() []*Trail { return s.trails.trails }
