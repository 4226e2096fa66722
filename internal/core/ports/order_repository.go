package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order row, its item snapshots and the
// append-only status history together.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and the initial
	// history entry atomically within the ambient transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change: the order row is updated and any
	// history entries appended since the aggregate was loaded are
	// inserted. Existing history rows are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the complete aggregate by id, including items and the
	// oldest-first history. Returns an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPaymentID retrieves the order matching exactly the
	// (paymentID, userID, tenantID) triple. Absence is not an error:
	// the order result is nil when no match exists.
	GetByPaymentID(ctx context.Context, paymentID, userID, tenantID kernel.UUID) (*order.Order, error)
}
