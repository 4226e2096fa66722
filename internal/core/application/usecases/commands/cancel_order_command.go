package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a validated request to cancel an order on
// behalf of a caller.
type CancelOrderCommand struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	tenantID kernel.UUID
	roles    []string
	reason   string

	guard kernel.ConstructorGuard
}

// NewCancelOrderCommand validates the identities involved in a cancel
// request. Reason is free text and may be empty.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	tenantID kernel.UUID,
	roles []string,
	reason string,
) (CancelOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:  orderID,
		callerID: callerID,
		tenantID: tenantID,
		roles:    roles,
		reason:   reason,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the acting user's identity.
func (c CancelOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// TenantID returns the caller's tenant.
func (c CancelOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Roles returns the caller's roles as supplied by the gateway.
func (c CancelOrderCommand) Roles() []string {
	return c.roles
}

// Reason returns the cancellation reason recorded in history.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
