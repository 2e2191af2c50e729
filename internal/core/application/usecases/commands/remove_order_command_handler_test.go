package commands_test

import (
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	_, testOrder := newTestParcelWithOwner(t, status.Delivered)

	cmd, err := commands.NewRemoveOrderCommand(testOrder.ID(), status.Administrator)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	mock.InOrder(
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		parcelRepo.On("RemoveByOrder", ctx, testOrder.ID()).Return(nil).Once(),
		orderRepo.On("Remove", ctx, testOrder.ID()).Return(nil).Once(),
	)

	handler := commands.NewRemoveOrderCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_RequiresAdministrator(t *testing.T) {
	ctx := t.Context()

	for _, role := range []status.Role{
		status.OriginAgent, status.HubAgent, status.DestinationAgent,
	} {
		t.Run(role.String(), func(t *testing.T) {
			cmd, err := commands.NewRemoveOrderCommand(kernel.NewUUID(), role)
			require.NoError(t, err)

			factory := new(MockDualStoreFactory)
			handler := commands.NewRemoveOrderCommandHandler(factory)
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrAdministratorRequired)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestRemoveOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRemoveOrderCommand(orderID, status.Administrator)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once()

	handler := commands.NewRemoveOrderCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "RemoveByOrder", mock.Anything, mock.Anything)
}

func TestRemoveOrderCommandHandler_Handle_PartialUpdateOnOrderRemove(t *testing.T) {
	ctx := t.Context()
	_, testOrder := newTestParcelWithOwner(t, status.Delivered)

	cmd, err := commands.NewRemoveOrderCommand(testOrder.ID(), status.Administrator)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	parcelRepo.On("RemoveByOrder", ctx, testOrder.ID()).Return(nil).Once()
	orderRepo.On("Remove", ctx, testOrder.ID()).Return(errors.New("connection reset")).Once()

	handler := commands.NewRemoveOrderCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialUpdate)

	var partialErr *errs.PartialUpdateError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, []string{commands.StepParcel}, partialErr.Completed)
}

func TestRemoveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RemoveOrderCommand{} // not constructed properly

	factory := new(MockDualStoreFactory)
	handler := commands.NewRemoveOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRemoveOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
