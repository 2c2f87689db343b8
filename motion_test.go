package fireworks

import "testing"

type testMover struct {
	pos, vel, force Vec3
}

func (m *testMover) Position() Vec3 { return m.pos }
func (m *testMover) Velocity() Vec3 { return m.vel }
func (m *testMover) Forces() Vec3   { return m.force }

func TestIntegrateStationary(t *testing.T) {
	m := &testMover{pos: Vec3{1, 2, 3}}
	pos, vel := Integrate(m, 0.5)
	assertVec(t, "pos", pos, Vec3{1, 2, 3})
	assertVec(t, "vel", vel, Vec3{})
}

func TestIntegrateZeroDt(t *testing.T) {
	m := &testMover{pos: Vec3{1, 2, 3}, vel: Vec3{4, 5, 6}, force: Vec3{7, 8, 9}}
	pos, vel := Integrate(m, 0)
	assertVec(t, "pos", pos, m.pos)
	assertVec(t, "vel", vel, m.vel)
}

func TestIntegrateUsesPreStepVelocity(t *testing.T) {
	// Constant force 2, dt 0.5, starting at rest position 0 with velocity 1:
	//   step 1: vel 1+2*0.5 = 2, pos 0+1*0.5 = 0.5
	//   step 2: vel 2+2*0.5 = 3, pos 0.5+2*0.5 = 1.5
	m := &testMover{vel: Vec3{Y: 1}, force: Vec3{Y: 2}}

	m.pos, m.vel = Integrate(m, 0.5)
	assertNear(t, "step 1 vel", m.vel.Y, 2)
	assertNear(t, "step 1 pos", m.pos.Y, 0.5)

	m.pos, m.vel = Integrate(m, 0.5)
	assertNear(t, "step 2 vel", m.vel.Y, 3)
	assertNear(t, "step 2 pos", m.pos.Y, 1.5)
}

func TestIntegratePerAxis(t *testing.T) {
	m := &testMover{
		pos:   Vec3{10, 20, 30},
		vel:   Vec3{1, -1, 2},
		force: Vec3{-4, 0, 8},
	}
	pos, vel := Integrate(m, 0.25)
	assertVec(t, "vel", vel, Vec3{0, -1, 4})
	assertVec(t, "pos", pos, Vec3{10.25, 19.75, 30.5})
}
