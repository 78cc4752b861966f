package events

// Event is a named occurrence with a flat key/value payload.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// New builds an event of the given type.
func New(eventType string, fields map[string]interface{}) Event {
	return Event{Type: eventType, Fields: fields}
}

// EventType implements ports.DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements ports.DomainEvent.
func (e Event) Payload() interface{} {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields
}
