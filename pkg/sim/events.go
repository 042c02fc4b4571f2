package sim

type EventType int

const (
	EventLightChanged EventType = iota
	EventPedestrianHold
	EventAccident
	EventReset
	EventRejected
	EventVehicleSpawned
	EventPedestriansSpawned
	EventVehiclesLeft       // vehicles drove off the right edge
	EventPedestriansCrossed // pedestrians reached the far side
)

type Event struct {
	Type      EventType
	Light     LightState
	Manual    bool
	Count     int
	Err       error
	Collision Collision
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, on the
// goroutine that emits them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
