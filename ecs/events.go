package ecs

// EventKind names a world event.
type EventKind string

const (
	// EventChairReset is pushed when a chair is moved back to its spawn.
	EventChairReset EventKind = "chair_reset"
	// EventTuningReloaded is pushed after a prefab reload swapped tuning.
	EventTuningReloaded EventKind = "tuning_reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue, cleared at the end of every frame.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Has reports whether an event of kind is queued, without consuming it.
func (q *EventQueue) Has(kind EventKind) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Kind == kind {
			return true
		}
	}
	return false
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
