package fireworks

// Mover is an entity that moves under forces computed from its own state.
type Mover interface {
	Position() Vec3
	Velocity() Vec3
	// Forces returns the acceleration acting on the entity this step.
	Forces() Vec3
}

// Integrate advances m by dt seconds and returns the new position and
// velocity. The position is advanced with the velocity from before this step's
// forces are applied; trajectories depend on that order.
func Integrate(m Mover, dt float64) (pos, vel Vec3) {
	v := m.Velocity()
	vel = v.Add(m.Forces().Scale(dt))
	pos = m.Position().Add(v.Scale(dt))
	return pos, vel
}
