package commands_test

import (
	"context"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) RemoveByOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

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

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ScanForParcel(ctx context.Context, parcelID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Append(ctx context.Context, event *tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingEventRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

type MockDualStore struct{ mock.Mock }

func (m *MockDualStore) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockDualStore) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDualStore) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

type MockDualStoreFactory struct{ mock.Mock }

func (m *MockDualStoreFactory) Create() commands.DualStore {
	args := m.Called()
	return args.Get(0).(commands.DualStore)
}

// newMockStore wires a factory returning a store backed by the three
// repository mocks.
func newMockStore(
	parcels *MockParcelRepository,
	orders *MockOrderRepository,
	events *MockTrackingEventRepository,
) *MockDualStoreFactory {
	store := new(MockDualStore)
	store.On("ParcelRepository").Return(parcels).Maybe()
	store.On("OrderRepository").Return(orders).Maybe()
	store.On("TrackingEventRepository").Return(events).Maybe()

	factory := new(MockDualStoreFactory)
	factory.On("Create").Return(store)
	return factory
}

// newTestParcelWithOwner builds a parcel at the given status together with
// an order whose embedded list mirrors it.
func newTestParcelWithOwner(t *testing.T, s status.Status) (*parcel.Parcel, *order.Order) {
	t.Helper()

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), s, "1Z999AA10123456784",
		nil, nil, nil, "", 1,
	)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		p.OrderID(), kernel.NewUUID(), []parcel.Snapshot{p.Snapshot()}, s, 1)
	require.NoError(t, err)

	return p, o
}
