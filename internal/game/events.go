package game

type EventType int

const (
	EventCollision EventType = iota
	EventGameOver
	EventRespawn
	EventStateChange
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // generic payload (e.g. new engine state)
}

type EventHandler func(Event)

// EventBus fans engine events out to subscribers (sound, HUD). Handlers
// run synchronously on the simulation goroutine and must not block.
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
