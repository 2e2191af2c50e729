package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// FlagParcelIssueCommandHandler attaches the issue flag to a parcel and
// propagates it through the dual store: normalized record, embedded
// snapshot, recomputed aggregate, and an audit event carrying the issue
// description. Shares the update transaction's write sequence and partial
// failure semantics.
type FlagParcelIssueCommandHandler struct {
	storeFactory DualStoreFactory
	resolver     services.AggregateResolver
}

// NewFlagParcelIssueCommandHandler creates the handler for issue reports.
func NewFlagParcelIssueCommandHandler(storeFactory DualStoreFactory) FlagParcelIssueCommandHandler {
	return FlagParcelIssueCommandHandler{
		storeFactory: storeFactory,
		resolver:     services.NewAggregateResolver(),
	}
}

// Handle flags the parcel and returns its updated state.
func (h *FlagParcelIssueCommandHandler) Handle(
	ctx context.Context,
	cmd FlagParcelIssueCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	store := h.storeFactory.Create()
	parcels := store.ParcelRepository()
	orders := store.OrderRepository()
	events := store.TrackingEventRepository()

	p, owner, err := loadParcelWithRecovery(ctx, parcels, orders, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	p.FlagIssue()

	if owner == nil {
		owner, err = orders.Get(ctx, p.OrderID())
		if err != nil {
			return nil, err
		}
	}

	if err = owner.ReplaceSnapshot(p.Snapshot()); err != nil {
		return nil, err
	}

	aggregate, err := h.resolver.Resolve(owner.ID(), owner.Snapshots())
	if err != nil {
		return nil, err
	}
	if err = owner.SetAggregateStatus(aggregate); err != nil {
		return nil, err
	}

	if err = parcels.Update(ctx, p); err != nil {
		return nil, err
	}
	if err = orders.Update(ctx, owner); err != nil {
		return nil, errs.NewPartialUpdateError([]string{StepParcel}, err)
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(), p.ID(), p.Status(),
		time.Now().UTC(),
		cmd.ActorID(), cmd.Location(), cmd.Notes(),
	)
	if err != nil {
		return nil, errs.NewPartialUpdateError([]string{StepParcel, StepOrder}, err)
	}
	if err = events.Append(ctx, event); err != nil {
		return nil, errs.NewPartialUpdateError([]string{StepParcel, StepOrder}, err)
	}

	return p, nil
}
