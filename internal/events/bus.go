// Package events provides the in-process event bus used to broadcast
// light and device state changes to reactive subsystems (SSE, metrics).
package events

import (
	"github.com/kelindar/event"
)

// Bus wraps a kelindar/event dispatcher for event broadcasting.
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers.
// Usage: bus.Publish(LightChangedEvent{...})
func (b *Bus) Publish(ev Event) {
	// kelindar/event is generic over the concrete type, so dispatch by type
	switch e := ev.(type) {
	case LightChangedEvent:
		event.Publish(b.dispatcher, e)
	case DeviceWriteFailedEvent:
		event.Publish(b.dispatcher, e)
	case BacklightModeChangedEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function; the handler's
// parameter type determines which events it receives.
// Returns an unsubscribe function.
// Usage: unsub := bus.Subscribe(func(e LightChangedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(LightChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(DeviceWriteFailedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(BacklightModeChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// No-op for unrecognized handler types
		return func() {}
	}
}
