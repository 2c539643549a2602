package game

import log "github.com/sirupsen/logrus"

// EventType identifies a simulation event.
type EventType int

const (
	EventFoodEaten EventType = iota
	EventSpecialExpired
	EventGameOver
	EventNewHighScore
)

// Event carries the details of a simulation event. Pos and Kind are set for
// EventFoodEaten; Score is the session score at emission time.
type Event struct {
	Type  EventType
	Pos   Position
	Kind  FoodKind
	Score int
}

// EventBus is a minimal synchronous pub/sub. Handlers run inline on Emit, in
// subscription order. Not safe for concurrent use; the session owns it and
// emits only from its own goroutine.
type EventBus struct {
	handlers map[EventType][]func(Event)
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]func(Event))}
}

func (b *EventBus) Subscribe(t EventType, fn func(Event)) {
	b.handlers[t] = append(b.handlers[t], fn)
}

func (b *EventBus) Emit(ev Event) {
	for _, fn := range b.handlers[ev.Type] {
		fn(ev)
	}
}

// AttachEventLog mirrors every simulation event to the debug log.
func AttachEventLog(bus *EventBus) {
	bus.Subscribe(EventFoodEaten, func(ev Event) {
		log.WithFields(log.Fields{"kind": ev.Kind.String(), "x": ev.Pos.X, "y": ev.Pos.Y, "score": ev.Score}).Debug("food eaten")
	})
	bus.Subscribe(EventSpecialExpired, func(ev Event) {
		log.Debug("special food expired")
	})
	bus.Subscribe(EventNewHighScore, func(ev Event) {
		log.WithField("score", ev.Score).Debug("new high score")
	})
	bus.Subscribe(EventGameOver, func(ev Event) {
		log.WithField("score", ev.Score).Debug("game over")
	})
}
