package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Envelope is the uniform response wrapper: every endpoint returns
// success, a human-readable message and an optional data payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CreateOrderRequest is the checkout payload. Amount positivity and
// currency consistency are enforced by the application layer; the
// validator covers presence and shape.
type CreateOrderRequest struct {
	ShippingAddressID string             `json:"shipping_address_id" validate:"required,uuid"`
	PaymentID         string             `json:"payment_id" validate:"required,uuid"`
	Items             []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	DiscountAmount    decimal.Decimal    `json:"discount_amount"`
	TaxAmount         decimal.Decimal    `json:"tax_amount"`
	ShippingCost      decimal.Decimal    `json:"shipping_cost"`
	Total             decimal.Decimal    `json:"total"`
	Currency          string             `json:"currency" validate:"omitempty,len=3,uppercase"`
	Notes             string             `json:"notes"`
}

// OrderItemRequest is one line item of the checkout payload.
type OrderItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required,uuid"`
	SKU         string          `json:"sku" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// UpdateOrderStatusRequest carries the target status and an optional
// reason recorded in the audit trail.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ReturnOrderRequest carries the items being returned and the reason.
// Item ids are accepted for forward compatibility with partial returns;
// the current return flow applies to the whole order.
type ReturnOrderRequest struct {
	ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,uuid"`
	Reason  string   `json:"reason" validate:"required"`
}

// OrderResponse is the full order representation returned by create, get
// and the mutating endpoints.
type OrderResponse struct {
	ID                string                       `json:"id"`
	OrderNumber       string                       `json:"order_number"`
	UserID            string                       `json:"user_id"`
	TenantID          string                       `json:"tenant_id"`
	Status            string                       `json:"status"`
	ShippingAddressID string                       `json:"shipping_address_id"`
	PaymentID         *string                      `json:"payment_id"`
	Items             []OrderItemResponse          `json:"items"`
	Subtotal          decimal.Decimal              `json:"subtotal"`
	DiscountAmount    decimal.Decimal              `json:"discount_amount"`
	TaxAmount         decimal.Decimal              `json:"tax_amount"`
	ShippingCost      decimal.Decimal              `json:"shipping_cost"`
	Total             decimal.Decimal              `json:"total"`
	Currency          string                       `json:"currency"`
	Notes             string                       `json:"notes"`
	StatusHistory     []OrderStatusHistoryResponse `json:"status_history"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         *time.Time                   `json:"updated_at"`
}

// OrderItemResponse is one line item of the full representation.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Currency    string          `json:"currency"`
}

// OrderStatusHistoryResponse is one audit entry of the full
// representation.
type OrderStatusHistoryResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PreviousStatus *string   `json:"previous_status"`
	Reason         string    `json:"reason"`
	ChangedBy      string    `json:"changed_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderSummaryResponse is the compact representation used by listings and
// the payment lookup.
type OrderSummaryResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	ItemCount   int             `json:"item_count"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderHistoryPageResponse is one page of the caller's order history.
type OrderHistoryPageResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Size       int                    `json:"size"`
}

func summaryResponse(summary queries.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:          summary.ID.String(),
		OrderNumber: summary.OrderNumber,
		Status:      summary.Status.String(),
		Total:       summary.Total,
		Currency:    summary.Currency,
		ItemCount:   summary.ItemCount,
		CreatedAt:   summary.CreatedAt,
	}
}

func aggregateResponse(aggregate *order.Order) OrderResponse {
	pricing := aggregate.Pricing()
	resp := OrderResponse{
		ID:                aggregate.ID().String(),
		OrderNumber:       aggregate.OrderNumber(),
		UserID:            aggregate.UserID().String(),
		TenantID:          aggregate.TenantID().String(),
		Status:            aggregate.Status().String(),
		ShippingAddressID: aggregate.ShippingAddressID().String(),
		Items:             make([]OrderItemResponse, 0, len(aggregate.Items())),
		Subtotal:          pricing.Subtotal().Amount(),
		DiscountAmount:    pricing.DiscountAmount().Amount(),
		TaxAmount:         pricing.TaxAmount().Amount(),
		ShippingCost:      pricing.ShippingCost().Amount(),
		Total:             pricing.Total().Amount(),
		Currency:          pricing.Currency(),
		Notes:             aggregate.Notes(),
		StatusHistory:     make([]OrderStatusHistoryResponse, 0, len(aggregate.History())),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
	if aggregate.PaymentID() != nil {
		pid := aggregate.PaymentID().String()
		resp.PaymentID = &pid
	}
	for _, item := range aggregate.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID().String(),
			ProductID:   item.ProductID().String(),
			SKU:         item.SKU(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
			Currency:    item.Currency(),
		})
	}
	for _, entry := range aggregate.History() {
		hr := OrderStatusHistoryResponse{
			ID:        entry.ID().String(),
			Status:    entry.Status().String(),
			Reason:    entry.Reason(),
			ChangedBy: entry.ChangedBy().String(),
			CreatedAt: entry.CreatedAt(),
		}
		if entry.PreviousStatus() != nil {
			prev := entry.PreviousStatus().String()
			hr.PreviousStatus = &prev
		}
		resp.StatusHistory = append(resp.StatusHistory, hr)
	}
	return resp
}

func viewResponse(view queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:                view.ID.String(),
		OrderNumber:       view.OrderNumber,
		UserID:            view.UserID.String(),
		TenantID:          view.TenantID.String(),
		Status:            view.Status.String(),
		ShippingAddressID: view.ShippingAddressID.String(),
		Items:             make([]OrderItemResponse, 0, len(view.Items)),
		Subtotal:          view.Subtotal,
		DiscountAmount:    view.DiscountAmount,
		TaxAmount:         view.TaxAmount,
		ShippingCost:      view.ShippingCost,
		Total:             view.Total,
		Currency:          view.Currency,
		Notes:             view.Notes,
		StatusHistory:     make([]OrderStatusHistoryResponse, 0, len(view.StatusHistory)),
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
	if view.PaymentID != nil {
		pid := view.PaymentID.String()
		resp.PaymentID = &pid
	}
	for _, item := range view.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Currency:    item.Currency,
		})
	}
	for _, entry := range view.StatusHistory {
		hr := OrderStatusHistoryResponse{
			ID:        entry.ID.String(),
			Status:    entry.Status.String(),
			Reason:    entry.Reason,
			ChangedBy: entry.ChangedBy.String(),
			CreatedAt: entry.CreatedAt,
		}
		if entry.PreviousStatus != nil {
			prev := entry.PreviousStatus.String()
			hr.PreviousStatus = &prev
		}
		resp.StatusHistory = append(resp.StatusHistory, hr)
	}
	return resp
}
