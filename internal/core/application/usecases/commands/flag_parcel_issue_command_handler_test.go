package commands_test

import (
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFlagParcelIssueCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testParcel, testOrder := newTestParcelWithOwner(t, status.ShippedToHub)

	cmd, err := commands.NewFlagParcelIssueCommand(
		testParcel.ID(), kernel.NewUUID(), status.HubAgent,
		"Dubai hub", "box arrived crushed",
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	mock.InOrder(
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		eventRepo.On("Append", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
			return e.Status() == status.IssueReported && e.Notes() == "box arrived crushed"
		})).Return(nil).Once(),
	)

	handler := commands.NewFlagParcelIssueCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	flagged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.IssueReported, flagged.Status())

	snap, found := testOrder.FindSnapshot(testParcel.ID())
	require.True(t, found)
	assert.Equal(t, status.IssueReported, snap.Status())

	parcelRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

// A flagged parcel does not drag the order's aggregate status along: the
// aggregate follows the remaining pipeline parcels.
func TestFlagParcelIssueCommandHandler_Handle_AggregateSkipsFlaggedParcel(t *testing.T) {
	ctx := t.Context()
	testParcel, testOrder := newTestParcelWithOwner(t, status.ShippedToHub)

	cmd, err := commands.NewFlagParcelIssueCommand(
		testParcel.ID(), kernel.NewUUID(), status.HubAgent, "", "seal broken")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	parcelRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	orderRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	eventRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	handler := commands.NewFlagParcelIssueCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// Single-parcel order: with its only parcel flagged, the aggregate is
	// the issue status itself.
	assert.Equal(t, status.IssueReported, testOrder.Status())
}

func TestFlagParcelIssueCommandHandler_Handle_AnyRoleAtAnyPosition(t *testing.T) {
	ctx := t.Context()
	// A destination agent flags a parcel still sitting at the origin: issue
	// reports bypass the role-transition policy entirely.
	testParcel, testOrder := newTestParcelWithOwner(t, status.PurchasedFromSeller)

	cmd, err := commands.NewFlagParcelIssueCommand(
		testParcel.ID(), kernel.NewUUID(), status.DestinationAgent,
		"", "customs paperwork missing",
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	parcelRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	orderRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	eventRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	handler := commands.NewFlagParcelIssueCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	flagged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, status.IssueReported, flagged.Status())
}

func TestFlagParcelIssueCommandHandler_Handle_PartialUpdateOnOrderWrite(t *testing.T) {
	ctx := t.Context()
	testParcel, testOrder := newTestParcelWithOwner(t, status.ShippedToHub)

	cmd, err := commands.NewFlagParcelIssueCommand(
		testParcel.ID(), kernel.NewUUID(), status.HubAgent, "", "label unreadable")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockTrackingEventRepository)

	parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	parcelRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	orderRepo.On("Update", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	handler := commands.NewFlagParcelIssueCommandHandler(
		newMockStore(parcelRepo, orderRepo, eventRepo))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPartialUpdate)

	var partialErr *errs.PartialUpdateError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, []string{commands.StepParcel}, partialErr.Completed)
}

func TestNewFlagParcelIssueCommand_NotesRequired(t *testing.T) {
	_, err := commands.NewFlagParcelIssueCommand(
		kernel.NewUUID(), kernel.NewUUID(), status.HubAgent, "Dubai hub", "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestFlagParcelIssueCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FlagParcelIssueCommand{} // not constructed properly

	factory := new(MockDualStoreFactory)
	handler := commands.NewFlagParcelIssueCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFlagParcelIssueCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
