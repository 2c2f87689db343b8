package fireworks

import "math"

// screenMatrix maps a rotated world position onto the screen plane.
//
//	| 0.866   0   -0.866 |
//	| -0.5   -1   -0.5   |
//
// World Y points up and screen Y points down, hence the negative second row.
var screenMatrix = [2][3]float64{
	{0.866, 0, -0.866},
	{-0.5, -1.0, -0.5},
}

// rotationSpeed is the camera orbit speed about the world Y axis, in radians
// per second.
const rotationSpeed = 0.2

// rotateY rotates p about the world Y axis by angle radians.
func rotateY(p Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: p.X*cos - p.Z*sin,
		Y: p.Y,
		Z: p.X*sin + p.Z*cos,
	}
}

// Project converts a world position into screen coordinates for a frame of
// the given size at time t. The world origin lands at (width/2, 0.75*height).
func Project(p Vec3, width, height int, t float64) Vec2 {
	r := rotateY(p, t*rotationSpeed)
	m := &screenMatrix
	return Vec2{
		X: m[0][0]*r.X + m[0][1]*r.Y + m[0][2]*r.Z + float64(width)/2,
		Y: m[1][0]*r.X + m[1][1]*r.Y + m[1][2]*r.Z + 0.75*float64(height),
	}
}

// Project converts p into screen coordinates for frame f at time t.
func (f *Frame) Project(p Vec3, t float64) Vec2 {
	return Project(p, f.Width, f.Height, t)
}
