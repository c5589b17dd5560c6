package commands_test

import (
	"context"
	"testing"

	"entrega/internal/core/application/usecases/commands"
	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/core/domain/services"
	"entrega/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransitionHandler(repo *MockOrderRepository) commands.TransitionOrderCommandHandler {
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	return commands.NewTransitionOrderCommandHandler(factory, services.NewTransitionPolicy())
}

func TestTransitionOrderCommandHandler_Handle_ClientConfirms(t *testing.T) {
	ctx := context.Background()

	pending := orderInStatus(t, order.PendingConfirmation, nil)
	confirmed := orderInStatus(t, order.ConfirmedByRestaurant, nil)
	client := actor(t, kernel.NewUUID(), kernel.RoleClient)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	repo.On("UpdateStatusIf",
		mock.Anything, pending.ID(),
		order.PendingConfirmation, (*kernel.UUID)(nil),
		order.ConfirmedByRestaurant, (*kernel.UUID)(nil),
	).Return(confirmed, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.ConfirmedByRestaurant, client)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.ConfirmedByRestaurant, result.Status())

	repo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_CourierDelivers(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	enRoute := orderInStatus(t, order.EnRoute, &courierID)
	delivered := orderInStatus(t, order.Delivered, &courierID)
	courier := actor(t, courierID, kernel.RoleCourier)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, enRoute.ID()).Return(enRoute, nil).Once()
	repo.On("UpdateStatusIf",
		mock.Anything, enRoute.ID(),
		order.EnRoute, &courierID,
		order.Delivered, &courierID,
	).Return(delivered, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(enRoute.ID(), order.Delivered, courier)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Delivered, result.Status())

	repo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_CourierNotOwner(t *testing.T) {
	ctx := context.Background()
	owner := kernel.NewUUID()

	enRoute := orderInStatus(t, order.EnRoute, &owner)
	stranger := actor(t, kernel.NewUUID(), kernel.RoleCourier)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, enRoute.ID()).Return(enRoute, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(enRoute.ID(), order.Delivered, stranger)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrNotOwner)

	repo.AssertNotCalled(t, "UpdateStatusIf",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_ClaimTargetRejectedForEveryone(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	ready := orderInStatus(t, order.ReadyForPickup, nil)

	for _, role := range []kernel.Role{kernel.RoleClient, kernel.RoleCourier} {
		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, ready.ID()).Return(ready, nil).Once()

		cmd, err := commands.NewTransitionOrderCommand(
			ready.ID(), order.ClaimedByCourier, actor(t, courierID, role))
		require.NoError(t, err)

		h := newTransitionHandler(repo)
		result, err := h.Handle(ctx, cmd)
		require.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrNotAllowedForRole)
	}
}

func TestTransitionOrderCommandHandler_Handle_IllegalEdge(t *testing.T) {
	ctx := context.Background()

	delivered := orderInStatus(t, order.Delivered, ptrUUID(kernel.NewUUID()))
	client := actor(t, kernel.NewUUID(), kernel.RoleClient)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, delivered.ID()).Return(delivered, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(delivered.ID(), order.Cancelled, client)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

// The first write loses a race but the transition is still legal from the
// fresh state, so the single retry succeeds.
func TestTransitionOrderCommandHandler_Handle_ConflictThenSuccess(t *testing.T) {
	ctx := context.Background()

	pending := orderInStatus(t, order.PendingConfirmation, nil)
	confirmed := orderInStatus(t, order.ConfirmedByRestaurant, nil)
	ready := orderInStatus(t, order.ReadyForPickup, nil)
	client := actor(t, kernel.NewUUID(), kernel.RoleClient)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	repo.On("UpdateStatusIf",
		mock.Anything, pending.ID(),
		order.PendingConfirmation, (*kernel.UUID)(nil),
		order.ReadyForPickup, (*kernel.UUID)(nil),
	).Return(nil, errs.NewVersionConflictError(pending.ID().String())).Once()

	// Retry sees the order already confirmed; confirmed -> ready is legal.
	repo.On("Get", mock.Anything, pending.ID()).Return(confirmed, nil).Once()
	repo.On("UpdateStatusIf",
		mock.Anything, pending.ID(),
		order.ConfirmedByRestaurant, (*kernel.UUID)(nil),
		order.ReadyForPickup, (*kernel.UUID)(nil),
	).Return(ready, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.ReadyForPickup, client)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.ReadyForPickup, result.Status())

	repo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RepeatedConflict_ReturnsConcurrentModification(t *testing.T) {
	ctx := context.Background()

	pending := orderInStatus(t, order.PendingConfirmation, nil)
	client := actor(t, kernel.NewUUID(), kernel.RoleClient)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Twice()
	repo.On("UpdateStatusIf",
		mock.Anything, pending.ID(),
		order.PendingConfirmation, (*kernel.UUID)(nil),
		order.ConfirmedByRestaurant, (*kernel.UUID)(nil),
	).Return(nil, errs.NewVersionConflictError(pending.ID().String())).Twice()

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.ConfirmedByRestaurant, client)
	require.NoError(t, err)

	h := newTransitionHandler(repo)
	result, err := h.Handle(ctx, cmd)
	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrConcurrentModification)

	repo.AssertExpectations(t)
}

func ptrUUID(id kernel.UUID) *kernel.UUID {
	return &id
}
