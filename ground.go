package fireworks

import (
	"math"
	"math/rand/v2"
)

// groundJitter is the vertical scatter of static markers.
var groundJitter = Range{-10, 10}

// StaticPoint is a fixed single-pixel marker. The show uses a ring of them to
// make the camera orbit visible.
type StaticPoint struct {
	pos   Vec3
	color Color
}

// NewStaticPoint places a marker at pos, nudged up or down by up to 10 units.
func NewStaticPoint(rng *rand.Rand, pos Vec3, color Color) StaticPoint {
	pos.Y += groundJitter.Random(rng)
	return StaticPoint{pos: pos, color: color}
}

// Render draws the marker as a single pixel.
func (p StaticPoint) Render(f *Frame, t float64) {
	sp := f.Project(p.pos, t)
	f.PrintPoint(int(sp.X), int(sp.Y), 0, p.color.RGBA())
}

// Position returns the marker position.
func (p StaticPoint) Position() Vec3 { return p.pos }

// groundRing returns n markers evenly spaced on a circle around the launch
// area.
func groundRing(rng *rand.Rand, n int, radius float64, color Color) []StaticPoint {
	points := make([]StaticPoint, 0, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		points = append(points, NewStaticPoint(rng, Vec3{X: radius * cos, Z: radius * sin}, color))
	}
	return points
}
