package queries

import (
	"context"

	"gorm.io/gorm"
)

// FindOrderByPaymentQueryHandler resolves the (payment, user, tenant)
// triple to an order summary, or nil when no order matches.
type FindOrderByPaymentQueryHandler struct {
	db *gorm.DB
}

// NewFindOrderByPaymentQueryHandler creates a handler for payment lookups.
func NewFindOrderByPaymentQueryHandler(db *gorm.DB) FindOrderByPaymentQueryHandler {
	return FindOrderByPaymentQueryHandler{db: db}
}

// Handle executes the lookup. A nil summary with a nil error means no
// order exists for the payment.
func (h FindOrderByPaymentQueryHandler) Handle(
	ctx context.Context,
	query FindOrderByPaymentQuery,
) (*OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []summaryRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id, o.order_number, o.status, o.total, o.currency, o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.payment_id = ? AND o.user_id = ? AND o.tenant_id = ?
		LIMIT 1
	`, query.PaymentID().Bytes(), query.UserID().Bytes(), query.TenantID().Bytes()).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	summary, err := summaryFromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
