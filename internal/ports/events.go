package ports

import "context"

const (
	// EventPreviewLoaded is emitted once the resize capability is acquired.
	EventPreviewLoaded = "preview.loaded"
	// EventPreviewUnavailable is emitted when the mock preview takes over.
	EventPreviewUnavailable = "preview.unavailable"
	// EventConfigReset is emitted when the playground returns to defaults.
	EventConfigReset = "config.reset"
	// EventExportOpened is emitted when the export pane is shown.
	EventExportOpened = "export.opened"
	// EventCopyCode is the analytics event sent after a successful copy.
	EventCopyCode = "click_copy_code"
)

// DomainEvent represents a significant occurrence in the playground.
// Events carry structured payloads that subscribers can use for logging,
// UI updates, or analytics.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous; Publish returns once all handlers ran. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log them and continue with the remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
