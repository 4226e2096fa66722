// Package queries contains read-side operations executed directly against
// the database, bypassing the aggregate. Responses are flat view structs
// shaped for the API, not domain objects.
package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the full read model of one order including its items and
// the oldest-first status history.
type OrderView struct {
	ID                kernel.UUID
	OrderNumber       string
	UserID            kernel.UUID
	TenantID          kernel.UUID
	Status            order.Status
	ShippingAddressID kernel.UUID
	PaymentID         *kernel.UUID
	Items             []OrderItemView
	Subtotal          decimal.Decimal
	DiscountAmount    decimal.Decimal
	TaxAmount         decimal.Decimal
	ShippingCost      decimal.Decimal
	Total             decimal.Decimal
	Currency          string
	Notes             string
	StatusHistory     []StatusHistoryView
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// OrderItemView is one line item of the full read model.
type OrderItemView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	SKU         string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Currency    string
}

// StatusHistoryView is one audit entry of the full read model.
type StatusHistoryView struct {
	ID             kernel.UUID
	Status         order.Status
	PreviousStatus *order.Status
	Reason         string
	ChangedBy      kernel.UUID
	CreatedAt      time.Time
}

// OrderSummary is the compact read model used by history listings and the
// payment lookup.
type OrderSummary struct {
	ID          kernel.UUID
	OrderNumber string
	Status      order.Status
	Total       decimal.Decimal
	Currency    string
	ItemCount   int
	CreatedAt   time.Time
}
