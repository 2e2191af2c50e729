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

// UpdateParcelStatusCommandHandler orchestrates a parcel status change
// across the dual store: validate the transition for the acting role,
// mutate the normalized record, mirror it into the parent order's embedded
// list, recompute the order's aggregate status, and append a tracking
// event.
//
// The three writes are independent — there is no cross-collection
// transaction. A failure after the first write leaves the stores partially
// consistent and is surfaced as PartialUpdateError naming the steps that
// completed; nothing is retried here, the retry policy belongs to the
// caller.
type UpdateParcelStatusCommandHandler struct {
	storeFactory DualStoreFactory
	policy       services.TransitionPolicy
	resolver     services.AggregateResolver
}

// NewUpdateParcelStatusCommandHandler creates the handler for parcel status
// updates.
func NewUpdateParcelStatusCommandHandler(storeFactory DualStoreFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		storeFactory: storeFactory,
		policy:       services.NewTransitionPolicy(),
		resolver:     services.NewAggregateResolver(),
	}
}

// Handle processes the status update and returns the updated parcel.
//
// Failure modes: ObjectNotFoundError when the parcel exists in neither
// store, IllegalTransitionError when the role may not reach the requested
// status, ConcurrentModificationError when a compare-and-set write lost a
// race, PartialUpdateError when a later write failed after an earlier one
// succeeded, and raw repository errors otherwise.
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
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

	if !h.policy.IsAllowed(cmd.ActorRole(), p.Status(), cmd.Requested()) {
		return nil, errs.NewIllegalTransitionError(
			p.Status().String(), cmd.Requested().String(), cmd.ActorRole().String())
	}

	p.ApplyPatch(cmd.Patch())
	if err = p.ChangeStatus(cmd.Requested()); err != nil {
		return nil, err
	}

	// The recovery scan already loaded the owner; otherwise fetch it.
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
