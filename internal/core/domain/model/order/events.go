package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lifecycle event payloads published for downstream consumers (fulfillment,
// notification, refunds). Field names follow the established wire contract:
// snake_case JSON keyed by order id on the bus. Return requests publish no
// event; downstream systems observe returns through the audit trail.

// CreatedEvent is published after an order is committed in PLACED status.
type CreatedEvent struct {
	OrderID           string             `json:"order_id"`
	OrderNumber       string             `json:"order_number"`
	UserID            string             `json:"user_id"`
	TenantID          string             `json:"tenant_id"`
	ShippingAddressID string             `json:"shipping_address_id"`
	PaymentID         *string            `json:"payment_id"`
	Items             []CreatedEventItem `json:"items"`
	Total             decimal.Decimal    `json:"total"`
	Currency          string             `json:"currency"`
	CreatedAt         time.Time          `json:"created_at"`
}

// CreatedEventItem is the per-line payload inside CreatedEvent.
type CreatedEventItem struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// StatusUpdatedEvent is published after a generic status change commits.
type StatusUpdatedEvent struct {
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	UserID         string    `json:"user_id"`
	TenantID       string    `json:"tenant_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	Reason         string    `json:"reason"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CancelledEvent is published after a cancellation commits. It carries the
// payment reference so a downstream consumer can process the refund.
type CancelledEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id"`
	TenantID    string    `json:"tenant_id"`
	PaymentID   *string   `json:"payment_id"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// NewCreatedEvent builds the creation payload from a freshly created order.
func NewCreatedEvent(o *Order) CreatedEvent {
	items := make([]CreatedEventItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, CreatedEventItem{
			ProductID: item.ProductID().String(),
			SKU:       item.SKU(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return CreatedEvent{
		OrderID:           o.ID().String(),
		OrderNumber:       o.OrderNumber(),
		UserID:            o.UserID().String(),
		TenantID:          o.TenantID().String(),
		ShippingAddressID: o.ShippingAddressID().String(),
		PaymentID:         paymentIDString(o),
		Items:             items,
		Total:             o.Pricing().Total().Amount(),
		Currency:          o.Currency(),
		CreatedAt:         o.CreatedAt(),
	}
}

// NewStatusUpdatedEvent builds the status-change payload after a successful
// ChangeStatus.
func NewStatusUpdatedEvent(o *Order, previousStatus Status, reason string) StatusUpdatedEvent {
	return StatusUpdatedEvent{
		OrderID:        o.ID().String(),
		OrderNumber:    o.OrderNumber(),
		UserID:         o.UserID().String(),
		TenantID:       o.TenantID().String(),
		Status:         o.Status().String(),
		PreviousStatus: previousStatus.String(),
		Reason:         reason,
		UpdatedAt:      updatedAtOrCreation(o),
	}
}

// NewCancelledEvent builds the cancellation payload after a successful
// Cancel.
func NewCancelledEvent(o *Order, reason string) CancelledEvent {
	return CancelledEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.OrderNumber(),
		UserID:      o.UserID().String(),
		TenantID:    o.TenantID().String(),
		PaymentID:   paymentIDString(o),
		Reason:      reason,
		CancelledAt: updatedAtOrCreation(o),
	}
}

func paymentIDString(o *Order) *string {
	if o.PaymentID() == nil {
		return nil
	}
	s := o.PaymentID().String()
	return &s
}

func updatedAtOrCreation(o *Order) time.Time {
	if o.UpdatedAt() != nil {
		return *o.UpdatedAt()
	}
	return o.CreatedAt()
}
