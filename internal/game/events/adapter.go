package events

// EventPublisherAdapter adapts a Publisher to the processor.EventPublisher interface
type EventPublisherAdapter struct {
	bus Publisher
}

// NewEventPublisherAdapter creates a new adapter
func NewEventPublisherAdapter(bus Publisher) *EventPublisherAdapter {
	return &EventPublisherAdapter{bus: bus}
}

// Publish implements processor.EventPublisher
func (a *EventPublisherAdapter) Publish(event any) {
	if e, ok := event.(Event); ok {
		a.bus.Publish(e)
	}
	// Silently ignore non-Event types
}
