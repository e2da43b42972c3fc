package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventLaneHit = "lane_hit"

// LaneHitEvent is pushed when a lane's projectile first reaches its target.
type LaneHitEvent struct {
	Entity Entity
	Lane   int
}

// EventQueue is a simple FIFO queue. Systems later in the tick may peek at it
// with Each; the owner of the tick drains it.
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

// Each visits the queued events without consuming them.
func (q *EventQueue) Each(fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		fn(evt)
	}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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
