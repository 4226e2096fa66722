package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByPaymentID(
	ctx context.Context, paymentID, userID, tenantID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, paymentID, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishOrderStatusUpdated(ctx context.Context, event order.StatusUpdatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishOrderCancelled(ctx context.Context, event order.CancelledEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validCreateOrderParams(userID, tenantID kernel.UUID) commands.CreateOrderParams {
	return commands.CreateOrderParams{
		UserID:            userID,
		TenantID:          tenantID,
		ShippingAddressID: kernel.NewUUID(),
		Items: []commands.CreateOrderItemInput{
			{
				ProductID:   kernel.NewUUID(),
				SKU:         "SKU-1",
				ProductName: "Wireless Mouse",
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(250),
				TotalPrice:  decimal.NewFromInt(500),
			},
		},
		Subtotal:     decimal.NewFromInt(500),
		TaxAmount:    decimal.NewFromInt(90),
		ShippingCost: decimal.NewFromInt(40),
		Total:        decimal.NewFromInt(630),
	}
}

// newStoredOrder builds an aggregate as if loaded from persistence, owned
// by userID within tenantID and moved through the given statuses in order.
func newStoredOrder(t *testing.T, userID, tenantID kernel.UUID, path ...order.Status) *order.Order {
	t.Helper()

	params := validCreateOrderParams(userID, tenantID)
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)

	currency := cmd.Params().Currency
	unitPrice, err := kernel.NewMoney(params.Items[0].UnitPrice, currency)
	require.NoError(t, err)
	totalPrice, err := kernel.NewMoney(params.Items[0].TotalPrice, currency)
	require.NoError(t, err)
	item, err := order.NewOrderItem(
		params.Items[0].ProductID, params.Items[0].SKU, params.Items[0].ProductName,
		params.Items[0].Quantity, unitPrice, totalPrice)
	require.NoError(t, err)

	subtotal, err := kernel.NewMoney(params.Subtotal, currency)
	require.NoError(t, err)
	discount, err := kernel.ZeroMoney(currency)
	require.NoError(t, err)
	tax, err := kernel.NewMoney(params.TaxAmount, currency)
	require.NoError(t, err)
	shipping, err := kernel.NewMoney(params.ShippingCost, currency)
	require.NoError(t, err)
	total, err := kernel.NewMoney(params.Total, currency)
	require.NoError(t, err)
	pricing, err := order.NewPricing(subtotal, discount, tax, shipping, total)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		userID, tenantID, params.ShippingAddressID, nil, []order.OrderItem{item}, pricing, "")
	require.NoError(t, err)

	for _, status := range path {
		require.NoError(t, aggregate.ChangeStatus(status, userID, "test setup"))
	}
	return aggregate
}
