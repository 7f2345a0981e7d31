package input

type subscriptionKey struct {
	action Action
	phase  Phase
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Subscription identifies one registered handler. The zero value is inert.
type Subscription struct {
	key subscriptionKey
	id  uint64
}

// Valid reports whether s came from a successful Subscribe.
func (s Subscription) Valid() bool {
	return s.id != 0
}

// Dispatcher routes input events to the handlers subscribed to them.
// It is not safe for concurrent use; everything runs on the game loop.
type Dispatcher struct {
	nextID   uint64
	handlers map[subscriptionKey][]subscriber
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[subscriptionKey][]subscriber)}
}

// Subscribe registers h for events of action a in phase p.
func (d *Dispatcher) Subscribe(a Action, p Phase, h Handler) (Subscription, error) {
	if a == "" {
		return Subscription{}, ErrUnknownAction
	}
	if h == nil {
		return Subscription{}, ErrNilHandler
	}
	if d.handlers == nil {
		d.handlers = make(map[subscriptionKey][]subscriber)
	}
	d.nextID++
	key := subscriptionKey{action: a, phase: p}
	d.handlers[key] = append(d.handlers[key], subscriber{id: d.nextID, handler: h})
	return Subscription{key: key, id: d.nextID}, nil
}

// Unsubscribe removes a handler. It reports false if s was not registered.
func (d *Dispatcher) Unsubscribe(s Subscription) bool {
	if d == nil || !s.Valid() {
		return false
	}
	subs := d.handlers[s.key]
	for i, sub := range subs {
		if sub.id != s.id {
			continue
		}
		// copy so a Dispatch in progress keeps its own slice intact
		next := make([]subscriber, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(d.handlers, s.key)
		} else {
			d.handlers[s.key] = next
		}
		return true
	}
	return false
}

// Dispatch delivers evt and returns how many handlers saw it.
func (d *Dispatcher) Dispatch(evt Event) int {
	if d == nil {
		return 0
	}
	subs := d.handlers[subscriptionKey{action: evt.Action, phase: evt.Phase}]
	for _, sub := range subs {
		sub.handler(evt)
	}
	return len(subs)
}

// Subscribers returns the number of handlers for (a, p).
func (d *Dispatcher) Subscribers(a Action, p Phase) int {
	if d == nil {
		return 0
	}
	return len(d.handlers[subscriptionKey{action: a, phase: p}])
}
