package fireworks

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// trailAge is the age every trail starts with, in seconds.
const trailAge = 1.0

// Trail is a fading marker left behind a moving firework or star. It has no
// physics of its own.
type Trail struct {
	pos   Vec3
	color Color
	age   float64
	alive bool

	// fade drives the brightness from 1 to 0 over the trail's lifetime.
	fade       *gween.Tween
	brightness float64
}

// NewTrail creates a live trail at pos with the default age.
func NewTrail(pos Vec3, color Color) *Trail {
	return newTrail(pos, color, trailAge)
}

func newTrail(pos Vec3, color Color, life float64) *Trail {
	if life <= 0 {
		life = trailAge
	}
	return &Trail{
		pos:        pos,
		color:      color,
		age:        life,
		alive:      true,
		fade:       gween.New(1, 0, float32(life), ease.OutQuad),
		brightness: 1,
	}
}

// Update ages the trail by dt and kills it once its age runs out.
func (tr *Trail) Update(dt float64) {
	if !tr.alive {
		return
	}
	tr.age -= dt
	v, _ := tr.fade.Update(float32(dt))
	tr.brightness = float64(v)
	if tr.age <= 0 {
		tr.alive = false
	}
}

// Render draws the trail while it is alive, dimmed by its remaining
// brightness.
func (tr *Trail) Render(f *Frame, t float64) {
	if !tr.alive {
		return
	}
	p := f.Project(tr.pos, t)
	r := int(math.Floor(tr.age / 1.5))
	f.PrintPoint(int(p.X), int(p.Y), r, tr.color.Fade(tr.brightness).RGBA())
}

// IsAlive reports whether the trail still renders.
func (tr *Trail) IsAlive() bool { return tr.alive }

// Age returns the remaining age in seconds.
func (tr *Trail) Age() float64 { return tr.age }

// Position returns where the trail was dropped.
func (tr *Trail) Position() Vec3 { return tr.pos }

// trailSet is the trail collection owned by a firework or star.
type trailSet struct {
	trails []*Trail
	life   float64
}

// drop appends a new trail at pos.
func (s *trailSet) drop(pos Vec3, color Color) {
	s.trails = append(s.trails, newTrail(pos, color, s.life))
}

// update ages every trail and removes the dead ones in place.
func (s *trailSet) update(dt float64) {
	live := s.trails[:0]
	for _, tr := range s.trails {
		tr.Update(dt)
		if tr.alive {
			live = append(live, tr)
		}
	}
	clear(s.trails[len(live):])
	s.trails = live
}

func (s *trailSet) render(f *Frame, t float64) {
	for _, tr := range s.trails {
		tr.Render(f, t)
	}
}
