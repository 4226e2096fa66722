package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order through its lifecycle.
// The tenant boundary is checked first, then the caller must hold an
// elevated role or own the order. The transition itself is validated by
// the aggregate.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "UpdateOrderStatusCommandHandler"),
	}
}

// Handle processes the status update and returns the updated aggregate.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.TenantID().IsEqual(cmd.TenantID()) {
		return nil, errs.NewAccessDeniedError("order belongs to a different tenant")
	}
	if !services.HasElevatedRole(cmd.Roles()) && !aggregate.UserID().IsEqual(cmd.CallerID()) {
		return nil, errs.NewAccessDeniedError("caller is not allowed to update this order")
	}

	previousStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.CallerID(), cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := order.NewStatusUpdatedEvent(aggregate, previousStatus, cmd.Reason())
	if err = h.publisher.PublishOrderStatusUpdated(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order status updated event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
