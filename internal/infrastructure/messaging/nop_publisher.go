package messaging

import (
	"context"

	"github.com/FereolKpavode/CHURN/internal/domain/port"
	"github.com/FereolKpavode/CHURN/pkg/events"
)

// NopPublisher discards events. The CLI runs without a broker; scoring still
// works, only the event stream is absent.
type NopPublisher struct{}

var _ port.EventPublisher = NopPublisher{}

// Publish drops the events.
func (NopPublisher) Publish(_ context.Context, _ ...events.DomainEvent) error {
	return nil
}
