package commands

import (
	"context"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// CreateOrderCommandHandler registers a new order together with its
// parcels: one normalized parcel record per line item, the embedded
// snapshot list on the order, the resolved initial aggregate status, and
// an initial tracking event per parcel.
//
// The order record is written first so the embedded copies exist even if a
// later parcel write fails — the mirror repair job can then re-materialize
// the missing normalized records. Later write failures surface as
// PartialUpdateError naming every step already persisted.
type CreateOrderCommandHandler struct {
	storeFactory DualStoreFactory
	resolver     services.AggregateResolver
}

// NewCreateOrderCommandHandler creates the handler for order registration.
func NewCreateOrderCommandHandler(storeFactory DualStoreFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		storeFactory: storeFactory,
		resolver:     services.NewAggregateResolver(),
	}
}

// Handle creates the order and returns the persisted aggregate.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(cmd.TrackingNumbers()))
	snapshots := make([]parcel.Snapshot, 0, len(cmd.TrackingNumbers()))
	for _, trackingNumber := range cmd.TrackingNumbers() {
		p, err := parcel.NewParcel(kernel.NewUUID(), cmd.OrderID(), trackingNumber)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
		snapshots = append(snapshots, p.Snapshot())
	}

	aggregate, err := h.resolver.Resolve(cmd.OrderID(), snapshots)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), snapshots, aggregate)
	if err != nil {
		return nil, err
	}

	store := h.storeFactory.Create()
	orders := store.OrderRepository()
	parcelRepo := store.ParcelRepository()
	events := store.TrackingEventRepository()

	if err = orders.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	completed := []string{StepOrder}
	now := time.Now().UTC()
	for _, p := range parcels {
		if err = parcelRepo.Add(ctx, p); err != nil {
			return nil, errs.NewPartialUpdateError(completed, err)
		}
		completed = append(completed, fmt.Sprintf("%s:%s", StepParcel, p.ID()))

		event, eventErr := tracking.NewEvent(
			kernel.NewUUID(), p.ID(), p.Status(), now, cmd.ActorID(), "", "")
		if eventErr != nil {
			return nil, errs.NewPartialUpdateError(completed, eventErr)
		}
		if err = events.Append(ctx, event); err != nil {
			return nil, errs.NewPartialUpdateError(completed, err)
		}
		completed = append(completed, fmt.Sprintf("%s:%s", StepTrackingEvent, p.ID()))
	}

	return newOrder, nil
}
