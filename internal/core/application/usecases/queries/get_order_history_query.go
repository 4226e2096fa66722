package queries

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortableColumns whitelists the columns a caller may sort the history
// listing by. Anything else falls back to the default ordering.
var sortableColumns = map[string]struct{}{
	"created_at":   {},
	"updated_at":   {},
	"total":        {},
	"status":       {},
	"order_number": {},
}

// SortSpec is a parsed, whitelisted ordering for the history listing.
type SortSpec struct {
	Column     string
	Descending bool
}

// ParseSortSpec parses the "field,direction" sort parameter. Unknown
// columns, malformed input and the empty string all resolve to the default
// newest-first ordering rather than an error.
func ParseSortSpec(raw string) SortSpec {
	fallback := SortSpec{Column: "created_at", Descending: true}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return fallback
	}

	column := strings.ToLower(strings.TrimSpace(parts[0]))
	if _, ok := sortableColumns[column]; !ok {
		return fallback
	}

	return SortSpec{
		Column:     column,
		Descending: strings.EqualFold(strings.TrimSpace(parts[1]), "desc"),
	}
}

// GetOrderHistoryQuery lists the caller's own orders within a tenant,
// optionally filtered to one status, paginated and sorted.
type GetOrderHistoryQuery struct {
	userID       kernel.UUID
	tenantID     kernel.UUID
	statusFilter *order.Status
	page         int
	size         int
	sort         SortSpec

	guard kernel.ConstructorGuard
}

// NewGetOrderHistoryQuery validates identities and pagination. Page is
// zero-based; size defaults when non-positive and is capped.
func NewGetOrderHistoryQuery(
	userID kernel.UUID,
	tenantID kernel.UUID,
	statusFilter *order.Status,
	page int,
	size int,
	sort SortSpec,
) (GetOrderHistoryQuery, error) {
	if err := errors.Join(
		userID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrderHistoryQuery{}, err
		}
	}
	if page < 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidError("page")
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if sort.Column == "" {
		sort = ParseSortSpec("")
	}

	return GetOrderHistoryQuery{
		userID:       userID,
		tenantID:     tenantID,
		statusFilter: statusFilter,
		page:         page,
		size:         size,
		sort:         sort,
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q GetOrderHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// TenantID returns the tenant scope.
func (q GetOrderHistoryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// StatusFilter returns the optional status restriction.
func (q GetOrderHistoryQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// Page returns the zero-based page index.
func (q GetOrderHistoryQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrderHistoryQuery) Size() int {
	return q.size
}

// Sort returns the whitelisted ordering.
func (q GetOrderHistoryQuery) Sort() SortSpec {
	return q.sort
}
