package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full view of one order on behalf of a
// caller. The handler enforces ownership (owner or elevated role) and the
// tenant boundary.
type GetOrderQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	tenantID kernel.UUID
	roles    []string

	guard kernel.ConstructorGuard
}

// NewGetOrderQuery validates the identities involved in the lookup.
func NewGetOrderQuery(orderID, callerID, tenantID kernel.UUID, roles []string) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		callerID: callerID,
		tenantID: tenantID,
		roles:    roles,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to look up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CallerID returns the acting user's identity.
func (q GetOrderQuery) CallerID() kernel.UUID {
	return q.callerID
}

// TenantID returns the caller's tenant.
func (q GetOrderQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// Roles returns the caller's roles as supplied by the gateway.
func (q GetOrderQuery) Roles() []string {
	return q.roles
}
