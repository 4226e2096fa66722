package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// RequestReturnCommandHandler marks a delivered order as returned. Only
// the owner may request a return, and no lifecycle event is emitted for
// returns; downstream consumers learn about them by reading the order.
type RequestReturnCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "RequestReturnCommandHandler"),
	}
}

// Handle processes the return request and returns the updated aggregate.
func (h *RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) (*order.Order, error) {
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

	if !aggregate.UserID().IsEqual(cmd.CallerID()) {
		return nil, errs.NewAccessDeniedError("only the order owner can request a return")
	}
	if !aggregate.TenantID().IsEqual(cmd.TenantID()) {
		return nil, errs.NewAccessDeniedError("order belongs to a different tenant")
	}

	if err = aggregate.RequestReturn(cmd.CallerID(), cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
