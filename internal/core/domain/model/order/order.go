package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// initialHistoryReason is recorded on the PLACED entry written at creation.
const initialHistoryReason = "Order placed"

// Order is the aggregate root for a customer order. It is created once with
// status PLACED and is only ever mutated by status-changing operations, each
// of which appends exactly one StatusHistory row. An order is never
// physically deleted; CANCELLED and RETURNED are terminal logical states.
//
// Order maintains these invariants:
//   - The order number is assigned exactly once at creation
//   - Items are snapshots captured at creation and immutable afterwards
//   - The history collection is append-only, oldest first, and its first
//     entry is the PLACED record with a nil previous status
//   - Every status change stamps updatedAt
//
// All fields are private; state changes go through validated methods.
type Order struct {
	id                kernel.UUID
	userID            kernel.UUID
	tenantID          kernel.UUID
	orderNumber       string
	status            Status
	shippingAddressID kernel.UUID
	paymentID         *kernel.UUID
	pricing           Pricing
	notes             string
	items             []OrderItem
	history           []StatusHistory
	createdAt         time.Time
	updatedAt         *time.Time

	isConstructed bool
}

// NewOrder creates an order from checkout data. It assigns a fresh identity
// and order number, places the order (status PLACED) and writes the initial
// history entry with a nil previous status, attributed to the owning user.
func NewOrder(
	userID kernel.UUID,
	tenantID kernel.UUID,
	shippingAddressID kernel.UUID,
	paymentID *kernel.UUID,
	items []OrderItem,
	pricing Pricing,
	notes string,
) (*Order, error) {
	if err := errors.Join(
		userID.Validate(),
		tenantID.Validate(),
		shippingAddressID.Validate(),
		pricing.Validate(),
	); err != nil {
		return nil, err
	}

	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return nil, err
		}
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.Currency() != pricing.Currency() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("item %s currency %s does not match order currency %s",
					item.SKU(), item.Currency(), pricing.Currency()))
		}
	}

	initial, err := NewStatusHistory(Placed, nil, initialHistoryReason, userID)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                kernel.NewUUID(),
		userID:            userID,
		tenantID:          tenantID,
		orderNumber:       GenerateOrderNumber(),
		status:            Placed,
		shippingAddressID: shippingAddressID,
		paymentID:         paymentID,
		pricing:           pricing,
		notes:             notes,
		items:             items,
		history:           []StatusHistory{initial},
		createdAt:         time.Now().UTC(),
		isConstructed:     true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation side effects. The caller supplies the full state including items
// and the oldest-first history.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	tenantID kernel.UUID,
	orderNumber string,
	status Status,
	shippingAddressID kernel.UUID,
	paymentID *kernel.UUID,
	pricing Pricing,
	notes string,
	items []OrderItem,
	history []StatusHistory,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		tenantID.Validate(),
		status.Validate(),
		shippingAddressID.Validate(),
		pricing.Validate(),
		ValidateOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                id,
		userID:            userID,
		tenantID:          tenantID,
		orderNumber:       orderNumber,
		status:            status,
		shippingAddressID: shippingAddressID,
		paymentID:         paymentID,
		pricing:           pricing,
		notes:             notes,
		items:             items,
		history:           history,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// TenantID returns the tenant the order belongs to.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// OrderNumber returns the immutable human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddressID returns the shipping address reference.
func (o *Order) ShippingAddressID() kernel.UUID {
	return o.shippingAddressID
}

// PaymentID returns the payment reference, nil when the order was created
// without one.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// Pricing returns the monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Currency returns the order's currency code.
func (o *Order) Currency() string {
	return o.pricing.Currency()
}

// Notes returns the free-text notes supplied at creation.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the line items in order.
func (o *Order) Items() []OrderItem {
	return o.items
}

// History returns the status audit trail, oldest first.
func (o *Order) History() []StatusHistory {
	return o.history
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp, nil when the order has
// never been mutated after creation.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to newStatus along the generic transition
// graph. Requesting the current status again succeeds and still appends a
// history row, since callers invoke this unconditionally on the write path.
// On success the status is flipped, updatedAt is stamped, and exactly one
// history row is appended attributing the change to changedBy.
func (o *Order) ChangeStatus(newStatus Status, changedBy kernel.UUID, reason string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	return o.applyStatus(next, changedBy, reason)
}

// Cancel cancels the order using the cancel-specific guard rather than the
// generic transition graph: cancellation is rejected once the order has
// shipped, been delivered, or is already cancelled.
func (o *Order) Cancel(changedBy kernel.UUID, reason string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	if !o.status.CanCancel() {
		return errs.NewInvalidOperationError(
			fmt.Sprintf("order cannot be cancelled, current status: %s", o.status))
	}

	return o.applyStatus(Cancelled, changedBy, reason)
}

// RequestReturn flips a delivered order to RETURNED. Eligibility is
// status-only here; the owner-only access rule is enforced by the
// application layer.
func (o *Order) RequestReturn(changedBy kernel.UUID, reason string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := changedBy.Validate(); err != nil {
		return err
	}

	if !o.status.CanReturn() {
		return errs.NewInvalidOperationError(
			fmt.Sprintf("order must be delivered to request return, current status: %s", o.status))
	}

	return o.applyStatus(Returned, changedBy, reason)
}

// applyStatus performs the shared tail of every status change: append one
// history row recording the previous status, flip the status, stamp
// updatedAt.
func (o *Order) applyStatus(next Status, changedBy kernel.UUID, reason string) error {
	previous := o.status
	entry, err := NewStatusHistory(next, &previous, reason, changedBy)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = next
	o.updatedAt = &now
	o.history = append(o.history, entry)
	return nil
}
