package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_OwnerConfirms(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, userID, tenantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), userID, tenantID, nil, order.Confirmed, "payment verified")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusUpdated", mock.Anything, mock.AnythingOfType("order.StatusUpdatedEvent")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Confirmed, updated.Status())
	require.Len(t, updated.History(), 2)
	last := updated.History()[1]
	require.Equal(t, order.Confirmed, last.Status())
	require.Equal(t, order.Placed, *last.PreviousStatus())
	require.Equal(t, "payment verified", last.Reason())
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ElevatedRoleOnForeignOrder(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	staff := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, owner, tenantID, order.Confirmed)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), staff, tenantID, []string{services.RoleStaff}, order.Processing, "picking started")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusUpdated", mock.Anything, mock.AnythingOfType("order.StatusUpdatedEvent")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Processing, updated.Status())
	require.Equal(t, staff, updated.History()[len(updated.History())-1].ChangedBy())
}

func TestUpdateOrderStatusCommandHandler_Handle_TenantMismatch(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	stored := newStoredOrder(t, userID, kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), userID, kernel.NewUUID(), []string{services.RoleAdmin}, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_StrangerWithoutRole(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, kernel.NewUUID(), tenantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), kernel.NewUUID(), tenantID, []string{"CUSTOMER"}, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, userID, tenantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), userID, tenantID, nil, order.Shipped, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Equal(t, order.Placed, stored.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_SameStatusIsIdempotent(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, userID, tenantID, order.Confirmed)
	historyBefore := len(stored.History())

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), userID, tenantID, nil, order.Confirmed, "retry")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusUpdated", mock.Anything, mock.AnythingOfType("order.StatusUpdatedEvent")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Confirmed, updated.Status())
	require.Len(t, updated.History(), historyBefore+1)
	last := updated.History()[len(updated.History())-1]
	require.Equal(t, order.Confirmed, *last.PreviousStatus())
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, userID, kernel.NewUUID(), nil, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_PublishErrorIsSwallowed(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	stored := newStoredOrder(t, userID, tenantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		stored.ID(), userID, tenantID, nil, order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderStatusUpdated", mock.Anything, mock.AnythingOfType("order.StatusUpdatedEvent")).
			Return(errors.New("broker down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Confirmed, updated.Status())
}
