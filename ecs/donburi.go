package ecs

import (
	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for firework lifecycle events.
var EventType = events.NewEventType[fireworks.Event]()

// FireworkData mirrors one live firework.
type FireworkData struct {
	ID       uint64
	Color    fireworks.Color
	Launched float64
	// Burst is set once the firework has burst; BurstAt and Stars then hold
	// the show time and the burst size.
	Burst   bool
	BurstAt float64
	Stars   int
}

// Firework is the component attached to mirrored firework entities.
var Firework = donburi.NewComponentType[FireworkData]()

// DonburiSink is a fireworks.EventSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[uint64]donburi.Entity
}

// NewDonburiSink creates a sink that publishes to EventType and keeps one
// entity per live firework. Events are queued; call EventType.ProcessEvents
// (or events.ProcessAllEvents) to deliver them.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{
		world:    world,
		entities: make(map[uint64]donburi.Entity),
	}
}

// EmitEvent implements fireworks.EventSink.
func (s *DonburiSink) EmitEvent(ev fireworks.Event) {
	switch ev.Type {
	case fireworks.EventLaunch:
		e := s.world.Create(Firework)
		Firework.SetValue(s.world.Entry(e), FireworkData{
			ID:       ev.FireworkID,
			Color:    ev.Color,
			Launched: ev.Time,
		})
		s.entities[ev.FireworkID] = e
	case fireworks.EventBurst:
		if e, ok := s.entities[ev.FireworkID]; ok && s.world.Valid(e) {
			d := Firework.Get(s.world.Entry(e))
			d.Burst = true
			d.BurstAt = ev.Time
			d.Stars = ev.Stars
		}
	case fireworks.EventSpent:
		if e, ok := s.entities[ev.FireworkID]; ok {
			if s.world.Valid(e) {
				s.world.Remove(e)
			}
			delete(s.entities, ev.FireworkID)
		}
	}
	EventType.Publish(s.world, ev)
}

// Entity returns the entity mirroring the firework with the given ID.
func (s *DonburiSink) Entity(id uint64) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Len returns the number of mirrored fireworks.
func (s *DonburiSink) Len() int {
	return len(s.entities)
}
