// Package analytics sends fire-and-forget usage events.
package analytics

import (
	"context"

	"github.com/alexisbeaulieu97/reszplay/internal/events"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
)

// Beacon publishes named usage events. A nil Beacon or a Beacon without a
// publisher drops events silently.
type Beacon struct {
	publisher ports.EventPublisher
	source    string
}

// NewBeacon creates a Beacon tagging each event with source.
func NewBeacon(publisher ports.EventPublisher, source string) *Beacon {
	return &Beacon{publisher: publisher, source: source}
}

// Track sends name. It never blocks on delivery errors and never returns one.
func (b *Beacon) Track(ctx context.Context, name string) {
	if b == nil || b.publisher == nil || name == "" {
		return
	}
	fields := map[string]interface{}{}
	if b.source != "" {
		fields["source"] = b.source
	}
	_ = b.publisher.Publish(ctx, events.New(name, fields))
}

// CopyCode records a successful snippet copy.
func (b *Beacon) CopyCode(ctx context.Context) {
	b.Track(ctx, ports.EventCopyCode)
}
