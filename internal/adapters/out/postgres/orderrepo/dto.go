// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their relational
// representation across the orders, order_items and order_status_history
// tables.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row for an order aggregate. Composite indexes
// back the service's lookup paths: owner history (user_id, tenant_id),
// tenant dashboards (tenant_id, status) and checkout idempotency
// (payment_id, user_id, tenant_id). Items and history rows cascade-delete
// with the order; the core never deletes orders, but the schema honors it.
type OrderDTO struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID               `gorm:"type:uuid;not null;index:idx_orders_user_tenant,priority:1;index:idx_orders_payment_user_tenant,priority:2"`
	TenantID          uuid.UUID               `gorm:"type:uuid;not null;index:idx_orders_user_tenant,priority:2;index:idx_orders_tenant_status,priority:1;index:idx_orders_payment_user_tenant,priority:3"`
	OrderNumber       string                  `gorm:"size:64;not null;uniqueIndex"`
	Status            string                  `gorm:"size:32;not null;index:idx_orders_tenant_status,priority:2"`
	ShippingAddressID uuid.UUID               `gorm:"type:uuid;not null"`
	PaymentID         *uuid.UUID              `gorm:"type:uuid;index:idx_orders_payment_user_tenant,priority:1"`
	Subtotal          decimal.Decimal         `gorm:"type:numeric(19,2);not null"`
	DiscountAmount    decimal.Decimal         `gorm:"type:numeric(19,2);not null"`
	TaxAmount         decimal.Decimal         `gorm:"type:numeric(19,2);not null"`
	ShippingCost      decimal.Decimal         `gorm:"type:numeric(19,2);not null"`
	Total             decimal.Decimal         `gorm:"type:numeric(19,2);not null"`
	Currency          string                  `gorm:"size:3;not null"`
	Notes             string                  `gorm:"size:1000"`
	Items             []OrderItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History           []OrderStatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time               `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt         *time.Time              `gorm:"autoUpdateTime:false"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database row for a line item snapshot.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SKU         string          `gorm:"column:sku;size:100;not null"`
	ProductName string          `gorm:"size:500;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderStatusHistoryDTO is the database row for one append-only audit
// entry. Rows are only ever inserted.
type OrderStatusHistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"size:32;not null"`
	PreviousStatus *string   `gorm:"size:32"`
	Reason         string    `gorm:"size:500"`
	ChangedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"not null;index;autoCreateTime:false"`
}

// TableName overrides GORM's default naming to use "order_status_history".
func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation,
// including item and history child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			SKU:         item.SKU(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
			Currency:    item.Currency(),
		})
	}

	pricing := aggregate.Pricing()
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		UserID:            aggregate.UserID().Bytes(),
		TenantID:          aggregate.TenantID().Bytes(),
		OrderNumber:       aggregate.OrderNumber(),
		Status:            aggregate.Status().String(),
		ShippingAddressID: aggregate.ShippingAddressID().Bytes(),
		PaymentID:         paymentID,
		Subtotal:          pricing.Subtotal().Amount(),
		DiscountAmount:    pricing.DiscountAmount().Amount(),
		TaxAmount:         pricing.TaxAmount().Amount(),
		ShippingCost:      pricing.ShippingCost().Amount(),
		Total:             pricing.Total().Amount(),
		Currency:          pricing.Currency(),
		Notes:             aggregate.Notes(),
		Items:             items,
		History:           historyFromDomain(aggregate),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// historyFromDomain converts the aggregate's audit trail to child rows.
func historyFromDomain(aggregate *order.Order) []OrderStatusHistoryDTO {
	history := make([]OrderStatusHistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		var previous *string
		if prev := entry.PreviousStatus(); prev != nil {
			s := prev.String()
			previous = &s
		}
		history = append(history, OrderStatusHistoryDTO{
			ID:             entry.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			Status:         entry.Status().String(),
			PreviousStatus: previous,
			Reason:         entry.Reason(),
			ChangedBy:      entry.ChangedBy().Bytes(),
			CreatedAt:      entry.CreatedAt(),
		})
	}
	return history
}

// toDomain converts a database DTO (with preloaded items and history) back
// to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	shippingAddressID, err := kernel.UUIDFromBytes(dto.ShippingAddressID[:])
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if pErr != nil {
			return nil, pErr
		}
		paymentID = &pID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusHistory, 0, len(dto.History))
	for _, historyDTO := range dto.History {
		entry, historyErr := historyEntryToDomain(historyDTO)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id,
		userID,
		tenantID,
		dto.OrderNumber,
		status,
		shippingAddressID,
		paymentID,
		pricing,
		dto.Notes,
		items,
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func pricingToDomain(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal, dto.Currency)
	if err != nil {
		return order.Pricing{}, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount, dto.Currency)
	if err != nil {
		return order.Pricing{}, err
	}
	tax, err := kernel.NewMoney(dto.TaxAmount, dto.Currency)
	if err != nil {
		return order.Pricing{}, err
	}
	shipping, err := kernel.NewMoney(dto.ShippingCost, dto.Currency)
	if err != nil {
		return order.Pricing{}, err
	}
	total, err := kernel.NewMoney(dto.Total, dto.Currency)
	if err != nil {
		return order.Pricing{}, err
	}
	return order.NewPricing(subtotal, discount, tax, shipping, total)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderItem{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.OrderItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return order.OrderItem{}, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice, dto.Currency)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.RestoreOrderItem(id, productID, dto.SKU, dto.ProductName, dto.Quantity, unitPrice, totalPrice)
}

func historyEntryToDomain(dto OrderStatusHistoryDTO) (order.StatusHistory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusHistory{}, err
	}
	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return order.StatusHistory{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.StatusHistory{}, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		prev, prevErr := order.ParseStatus(*dto.PreviousStatus)
		if prevErr != nil {
			return order.StatusHistory{}, prevErr
		}
		previous = &prev
	}

	return order.RestoreStatusHistory(id, status, previous, dto.Reason, changedBy, dto.CreatedAt)
}
