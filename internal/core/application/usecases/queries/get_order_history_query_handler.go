package queries

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummaryPage is one page of the owner's order history plus the
// total match count for client-side pagination.
type OrderSummaryPage struct {
	Orders     []OrderSummary
	TotalCount int64
	Page       int
	Size       int
}

// GetOrderHistoryQueryHandler lists the caller's orders from the database.
// The listing is strictly owner-scoped; there is no elevated-role variant.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history listings.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

type summaryRow struct {
	ID          uuid.UUID
	OrderNumber string
	Status      string
	Total       decimal.Decimal
	Currency    string
	ItemCount   int
	CreatedAt   time.Time
}

// Handle executes the listing. The ORDER BY clause is assembled only from
// the whitelisted sort column, never from raw caller input.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (OrderSummaryPage, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryPage{}, err
	}

	where := "user_id = ? AND tenant_id = ?"
	args := []any{query.UserID().Bytes(), query.TenantID().Bytes()}
	if query.StatusFilter() != nil {
		where += " AND status = ?"
		args = append(args, query.StatusFilter().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return OrderSummaryPage{}, err
	}

	direction := "ASC"
	if query.Sort().Descending {
		direction = "DESC"
	}

	var rows []summaryRow
	sql := fmt.Sprintf(`
		SELECT
			o.id, o.order_number, o.status, o.total, o.currency, o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE %s
		ORDER BY o.%s %s
		LIMIT ? OFFSET ?
	`, where, query.Sort().Column, direction)
	args = append(args, query.Size(), query.Page()*query.Size())

	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return OrderSummaryPage{}, err
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := summaryFromRow(row)
		if err != nil {
			return OrderSummaryPage{}, err
		}
		summaries = append(summaries, summary)
	}

	return OrderSummaryPage{
		Orders:     summaries,
		TotalCount: total,
		Page:       query.Page(),
		Size:       query.Size(),
	}, nil
}

func summaryFromRow(row summaryRow) (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:          id,
		OrderNumber: row.OrderNumber,
		Status:      status,
		Total:       row.Total,
		Currency:    row.Currency,
		ItemCount:   row.ItemCount,
		CreatedAt:   row.CreatedAt,
	}, nil
}
