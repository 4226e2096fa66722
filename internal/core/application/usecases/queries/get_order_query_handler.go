package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads the full order view from the database.
// Ownership is checked through the access policy before the tenant
// boundary.
type GetOrderQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, accessPolicy: services.NewAccessPolicy()}
}

type orderRow struct {
	ID                uuid.UUID
	OrderNumber       string
	UserID            uuid.UUID
	TenantID          uuid.UUID
	Status            string
	ShippingAddressID uuid.UUID
	PaymentID         *uuid.UUID
	Subtotal          decimal.Decimal
	DiscountAmount    decimal.Decimal
	TaxAmount         decimal.Decimal
	ShippingCost      decimal.Decimal
	Total             decimal.Decimal
	Currency          string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type orderItemRow struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Sku         string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Currency    string
}

type historyRow struct {
	ID             uuid.UUID
	Status         string
	PreviousStatus *string
	Reason         string
	ChangedBy      uuid.UUID
	CreatedAt      time.Time
}

// Handle executes the lookup and returns the full view with items and the
// oldest-first history.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number, user_id, tenant_id, status,
			shipping_address_id, payment_id,
			subtotal, discount_amount, tax_amount, shipping_cost, total,
			currency, notes, created_at, updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return OrderView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	ownerID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderView{}, err
	}
	if !h.accessPolicy.CanAccess(query.CallerID(), ownerID, query.Roles()) {
		return OrderView{}, errs.NewAccessDeniedError("caller is not allowed to view this order")
	}
	tenantID, err := kernel.UUIDFromBytes(row.TenantID[:])
	if err != nil {
		return OrderView{}, err
	}
	if !tenantID.IsEqual(query.TenantID()) {
		return OrderView{}, errs.NewAccessDeniedError("order belongs to a different tenant")
	}

	view, err := viewFromRow(row)
	if err != nil {
		return OrderView{}, err
	}

	var itemRows []orderItemRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT id, product_id, sku, product_name, quantity, unit_price, total_price, currency
		FROM order_items
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Scan(&itemRows).Error; err != nil {
		return OrderView{}, err
	}
	for _, ir := range itemRows {
		item, itemErr := itemViewFromRow(ir)
		if itemErr != nil {
			return OrderView{}, itemErr
		}
		view.Items = append(view.Items, item)
	}

	var historyRows []historyRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT id, status, previous_status, reason, changed_by, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, query.OrderID().Bytes()).Scan(&historyRows).Error; err != nil {
		return OrderView{}, err
	}
	for _, hr := range historyRows {
		entry, histErr := historyViewFromRow(hr)
		if histErr != nil {
			return OrderView{}, histErr
		}
		view.StatusHistory = append(view.StatusHistory, entry)
	}

	return view, nil
}

func viewFromRow(row orderRow) (OrderView, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderView{}, err
	}
	tenantID, err := kernel.UUIDFromBytes(row.TenantID[:])
	if err != nil {
		return OrderView{}, err
	}
	shippingAddressID, err := kernel.UUIDFromBytes(row.ShippingAddressID[:])
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderView{}, err
	}

	var paymentID *kernel.UUID
	if row.PaymentID != nil {
		pid, pidErr := kernel.UUIDFromBytes(row.PaymentID[:])
		if pidErr != nil {
			return OrderView{}, pidErr
		}
		paymentID = &pid
	}

	return OrderView{
		ID:                id,
		OrderNumber:       row.OrderNumber,
		UserID:            userID,
		TenantID:          tenantID,
		Status:            status,
		ShippingAddressID: shippingAddressID,
		PaymentID:         paymentID,
		Subtotal:          row.Subtotal,
		DiscountAmount:    row.DiscountAmount,
		TaxAmount:         row.TaxAmount,
		ShippingCost:      row.ShippingCost,
		Total:             row.Total,
		Currency:          row.Currency,
		Notes:             row.Notes,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func itemViewFromRow(row orderItemRow) (OrderItemView, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return OrderItemView{}, err
	}

	return OrderItemView{
		ID:          id,
		ProductID:   productID,
		SKU:         row.Sku,
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		TotalPrice:  row.TotalPrice,
		Currency:    row.Currency,
	}, nil
}

func historyViewFromRow(row historyRow) (StatusHistoryView, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return StatusHistoryView{}, err
	}
	changedBy, err := kernel.UUIDFromBytes(row.ChangedBy[:])
	if err != nil {
		return StatusHistoryView{}, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return StatusHistoryView{}, err
	}

	var previous *order.Status
	if row.PreviousStatus != nil {
		prev, prevErr := order.ParseStatus(*row.PreviousStatus)
		if prevErr != nil {
			return StatusHistoryView{}, prevErr
		}
		previous = &prev
	}

	return StatusHistoryView{
		ID:             id,
		Status:         status,
		PreviousStatus: previous,
		Reason:         row.Reason,
		ChangedBy:      changedBy,
		CreatedAt:      row.CreatedAt,
	}, nil
}
