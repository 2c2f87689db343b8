package fireworks

// EventType identifies a firework lifecycle event.
type EventType uint8

const (
	EventLaunch EventType = iota // a firework was added to the show
	EventBurst                   // a firework burst into stars this frame
	EventSpent                   // a firework was dropped from the show
)

var eventNames = [...]string{"launch", "burst", "spent"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event carries lifecycle data for an EventSink.
type Event struct {
	Type       EventType
	FireworkID uint64
	Color      Color
	// Position is the rocket position when the event fired.
	Position Vec3
	// Stars is the burst size for EventBurst, 0 otherwise.
	Stars int
	// Time is the show time in seconds.
	Time float64
}

// EventSink receives lifecycle events from a Show, for example an ECS bridge
// or an audio player. EmitEvent is called synchronously from Show.Step.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls fn(event).
func (fn EventSinkFunc) EmitEvent(event Event) { fn(event) }
