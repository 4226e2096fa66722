package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order. Ownership is checked through
// the access policy before the tenant boundary, and the aggregate's cancel
// guard decides whether the current status still permits cancellation.
type CancelOrderCommandHandler struct {
	uowFactory   UoWFactory
	publisher    ports.EventPublisher
	accessPolicy services.AccessPolicy
	logger       *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		publisher:    publisher,
		accessPolicy: services.NewAccessPolicy(),
		logger:       logger.With("component", "CancelOrderCommandHandler"),
	}
}

// Handle processes the cancellation and returns the cancelled aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if !h.accessPolicy.CanAccess(cmd.CallerID(), aggregate.UserID(), cmd.Roles()) {
		return nil, errs.NewAccessDeniedError("caller is not allowed to cancel this order")
	}
	if !aggregate.TenantID().IsEqual(cmd.TenantID()) {
		return nil, errs.NewAccessDeniedError("order belongs to a different tenant")
	}

	if err = aggregate.Cancel(cmd.CallerID(), cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishOrderCancelled(ctx, order.NewCancelledEvent(aggregate, cmd.Reason())); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order cancelled event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
