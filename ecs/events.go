package ecs

// EventType names an event payload.
type EventType string

const (
	EventJumpStarted   EventType = "jump_started"
	EventCoinCollected EventType = "coin_collected"
	EventPlayerDied    EventType = "player_died"
	EventRespawned     EventType = "respawned"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. It is flushed once per frame by the
// game loop after every system has had a chance to read it.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the pending events of type t without removing them.
func (q *EventQueue) Peek(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Flush drops every pending event.
func (q *EventQueue) Flush() {
	if q == nil {
		return
	}
	q.items = nil
}
