package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrRequestReturnCommandIsNotConstructed = errors.New(
		"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
	)
)

// RequestReturnCommand represents a validated request by a customer to
// return a delivered order. Return is strictly owner-initiated; there is
// no role bypass, so the command carries no roles.
type RequestReturnCommand struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	tenantID kernel.UUID
	reason   string

	guard kernel.ConstructorGuard
}

// NewRequestReturnCommand validates the identities involved in a return
// request.
func NewRequestReturnCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	tenantID kernel.UUID,
	reason string,
) (RequestReturnCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		orderID:  orderID,
		callerID: callerID,
		tenantID: tenantID,
		reason:   reason,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

// OrderID returns the order to return.
func (c RequestReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the acting user's identity.
func (c RequestReturnCommand) CallerID() kernel.UUID {
	return c.callerID
}

// TenantID returns the caller's tenant.
func (c RequestReturnCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Reason returns the return reason recorded in history.
func (c RequestReturnCommand) Reason() string {
	return c.reason
}
