package events

// EventCollector is embedded in the prediction aggregate. State transitions
// record events here instead of publishing directly, so a failed transition
// never leaks a half-true event.
type EventCollector struct {
	events []DomainEvent
}

// Record appends a domain event to the collector.
func (c *EventCollector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns the collected domain events without clearing them. Offline
// surfaces (the CLI, batch scoring) read events this way and never publish.
func (c *EventCollector) Events() []DomainEvent {
	return c.events
}

// ClearEvents hands the collected events to the publisher and resets the
// collector, so a republish cannot duplicate them.
func (c *EventCollector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}
