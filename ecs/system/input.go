package system

import (
	"github.com/milk9111/wheelchair/ecs"
	"github.com/milk9111/wheelchair/input"
)

// InputSystem polls a source once per frame and dispatches the resulting
// edge events to whoever subscribed.
type InputSystem struct {
	source     input.Source
	tracker    input.Tracker
	dispatcher *input.Dispatcher
}

func NewInputSystem(source input.Source, dispatcher *input.Dispatcher) *InputSystem {
	return &InputSystem{source: source, dispatcher: dispatcher}
}

func (i *InputSystem) Dispatcher() *input.Dispatcher {
	if i == nil {
		return nil
	}
	return i.dispatcher
}

// SetSource swaps the polled source. Held buttons are released first so no
// subscriber is left waiting for a Canceled that would never come.
func (i *InputSystem) SetSource(source input.Source) {
	if i == nil {
		return
	}
	i.Release()
	i.source = source
}

// Release dispatches Canceled for every held button.
func (i *InputSystem) Release() {
	if i == nil {
		return
	}
	for _, evt := range i.tracker.Reset() {
		i.dispatcher.Dispatch(evt)
	}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || i.dispatcher == nil {
		return
	}
	for _, evt := range i.tracker.Events(i.source.Snapshot()) {
		i.dispatcher.Dispatch(evt)
	}
}
