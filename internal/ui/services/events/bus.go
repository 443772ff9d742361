package events

import "fmt"

// Bus is a simple event bus for UI services. Publishing is
// synchronous: handlers run inline on the caller's goroutine, which
// keeps the whole picker single-threaded.
type Bus struct {
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := getEventType(event)
	for _, handler := range b.listeners[eventType] {
		handler(event)
	}
}

// getEventType extracts the type name from an event
func getEventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
