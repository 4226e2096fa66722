package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler records an order placed during checkout.
// Persists the aggregate with its items and initial history entry in one
// transaction, then publishes an order-created event best-effort.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	cmd, _ := NewCreateOrderCommand(params)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is now PLACED with one history entry
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence and an EventPublisher
// for the post-commit notification.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle processes the order creation command and returns the created
// aggregate. Event publishing runs strictly after commit; a publish failure
// is logged and never fails the operation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	params := cmd.Params()

	items, pricing, err := buildOrderContents(params)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		params.UserID,
		params.TenantID,
		params.ShippingAddressID,
		params.PaymentID,
		items,
		pricing,
		params.Notes,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishOrderCreated(ctx, order.NewCreatedEvent(aggregate)); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order created event",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}

// buildOrderContents converts the raw checkout payload into domain value
// objects sharing the command's currency.
func buildOrderContents(params CreateOrderParams) ([]order.OrderItem, order.Pricing, error) {
	items := make([]order.OrderItem, 0, len(params.Items))
	for _, input := range params.Items {
		unitPrice, err := kernel.NewMoney(input.UnitPrice, params.Currency)
		if err != nil {
			return nil, order.Pricing{}, err
		}
		totalPrice, err := kernel.NewMoney(input.TotalPrice, params.Currency)
		if err != nil {
			return nil, order.Pricing{}, err
		}

		item, err := order.NewOrderItem(
			input.ProductID, input.SKU, input.ProductName, input.Quantity, unitPrice, totalPrice)
		if err != nil {
			return nil, order.Pricing{}, err
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(params.Subtotal, params.Currency)
	if err != nil {
		return nil, order.Pricing{}, err
	}
	discount, err := kernel.NewMoney(params.DiscountAmount, params.Currency)
	if err != nil {
		return nil, order.Pricing{}, err
	}
	tax, err := kernel.NewMoney(params.TaxAmount, params.Currency)
	if err != nil {
		return nil, order.Pricing{}, err
	}
	shipping, err := kernel.NewMoney(params.ShippingCost, params.Currency)
	if err != nil {
		return nil, order.Pricing{}, err
	}
	total, err := kernel.NewMoney(params.Total, params.Currency)
	if err != nil {
		return nil, order.Pricing{}, err
	}

	pricing, err := order.NewPricing(subtotal, discount, tax, shipping, total)
	if err != nil {
		return nil, order.Pricing{}, err
	}

	return items, pricing, nil
}
