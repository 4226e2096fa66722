package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a validated request to move an order
// to a new lifecycle status on behalf of a caller.
type UpdateOrderStatusCommand struct {
	orderID   kernel.UUID
	callerID  kernel.UUID
	tenantID  kernel.UUID
	roles     []string
	newStatus order.Status
	reason    string

	guard kernel.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates identities and the target status.
// Roles may be empty; the handler then only grants owner access.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	callerID kernel.UUID,
	tenantID kernel.UUID,
	roles []string,
	newStatus order.Status,
	reason string,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		callerID.Validate(),
		tenantID.Validate(),
		newStatus.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		callerID:  callerID,
		tenantID:  tenantID,
		roles:     roles,
		newStatus: newStatus,
		reason:    reason,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the acting user's identity.
func (c UpdateOrderStatusCommand) CallerID() kernel.UUID {
	return c.callerID
}

// TenantID returns the caller's tenant.
func (c UpdateOrderStatusCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Roles returns the caller's roles as supplied by the gateway.
func (c UpdateOrderStatusCommand) Roles() []string {
	return c.roles
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Reason returns the free-text reason recorded in history.
func (c UpdateOrderStatusCommand) Reason() string {
	return c.reason
}
