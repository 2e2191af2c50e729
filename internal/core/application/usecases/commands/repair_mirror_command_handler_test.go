package commands_test

import (
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepairMirrorCommandHandler_Handle_MaterializesMissingRecords(t *testing.T) {
	ctx := t.Context()

	intactParcel, intactOrder := newTestParcelWithOwner(t, status.ArrivedHub)
	lostParcel, driftedOrder := newTestParcelWithOwner(t, status.Repacking)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("GetAll", ctx).
		Return([]*order.Order{intactOrder, driftedOrder}, nil).Once()
	parcelRepo.On("Get", ctx, intactParcel.ID()).Return(intactParcel, nil).Once()
	parcelRepo.On("Get", ctx, lostParcel.ID()).Return(nil, errs.ErrObjectNotFound).Once()
	parcelRepo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.IsEqual(lostParcel) &&
			p.OrderID().IsEqual(driftedOrder.ID()) &&
			p.Status() == status.Repacking &&
			p.Version() == 0
	})).Return(nil).Once()

	handler := commands.NewRepairMirrorCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	repaired, err := handler.Handle(ctx, commands.NewRepairMirrorCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
	parcelRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestRepairMirrorCommandHandler_Handle_NothingToRepair(t *testing.T) {
	ctx := t.Context()
	testParcel, testOrder := newTestParcelWithOwner(t, status.OutForDelivery)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("GetAll", ctx).Return([]*order.Order{testOrder}, nil).Once()
	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once()

	handler := commands.NewRepairMirrorCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	repaired, err := handler.Handle(ctx, commands.NewRepairMirrorCommand())

	require.NoError(t, err)
	assert.Zero(t, repaired)
	parcelRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRepairMirrorCommandHandler_Handle_GetAllError(t *testing.T) {
	ctx := t.Context()

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("GetAll", ctx).Return(nil, errors.New("database error")).Once()

	handler := commands.NewRepairMirrorCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	repaired, err := handler.Handle(ctx, commands.NewRepairMirrorCommand())

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	assert.Zero(t, repaired)
}

func TestRepairMirrorCommandHandler_Handle_StopsOnAddError(t *testing.T) {
	ctx := t.Context()
	lostParcel, driftedOrder := newTestParcelWithOwner(t, status.Repacking)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	orderRepo.On("GetAll", ctx).Return([]*order.Order{driftedOrder}, nil).Once()
	parcelRepo.On("Get", ctx, lostParcel.ID()).Return(nil, errs.ErrObjectNotFound).Once()
	parcelRepo.On("Add", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	handler := commands.NewRepairMirrorCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	repaired, err := handler.Handle(ctx, commands.NewRepairMirrorCommand())

	require.Error(t, err)
	assert.Zero(t, repaired)
}
