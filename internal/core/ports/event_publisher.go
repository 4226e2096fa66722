package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// EventPublisher emits order lifecycle events to the message bus, keyed by
// order id, one logical channel per event kind.
//
// Delivery is best-effort and at-most-once: command handlers invoke the
// publisher strictly after the transaction commits, log any returned error
// and never surface it to the caller. There is no retry and no dead-letter
// handling; order-record correctness must never depend on bus availability.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error
	PublishOrderStatusUpdated(ctx context.Context, event order.StatusUpdatedEvent) error
	PublishOrderCancelled(ctx context.Context, event order.CancelledEvent) error
}
