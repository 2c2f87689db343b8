package fireworks

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a point or direction in world space. Y points up.
// Positions and velocities share the type.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the vector sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the Euclidean norm of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vec2 is a projected screen coordinate with its origin at the top-left of the
// frame. It is not clamped to the frame; clipping happens when rasterizing.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range used for randomized spawn values.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// NewRand returns a PCG-backed generator for the given seed. Pass the result
// to NewShow or NewFirework; nothing in this package uses a global source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Renderer is implemented by everything that draws itself into a Frame.
// t is the time since start in seconds and drives the camera rotation.
type Renderer interface {
	Render(f *Frame, t float64)
}
