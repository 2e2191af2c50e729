package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/pkg/errs"
)

// RepairMirrorCommandHandler sweeps every order's embedded parcel list and
// re-materializes normalized records that are missing — the same recovery
// the update transaction performs on demand, run proactively so drift does
// not wait for the next status change to be repaired.
type RepairMirrorCommandHandler struct {
	storeFactory DualStoreFactory
}

// NewRepairMirrorCommandHandler creates the handler for mirror repair
// sweeps.
func NewRepairMirrorCommandHandler(storeFactory DualStoreFactory) RepairMirrorCommandHandler {
	return RepairMirrorCommandHandler{storeFactory: storeFactory}
}

// Handle runs one sweep and returns how many normalized records it
// materialized.
func (h *RepairMirrorCommandHandler) Handle(ctx context.Context, cmd RepairMirrorCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	store := h.storeFactory.Create()
	orders := store.OrderRepository()
	parcels := store.ParcelRepository()

	all, err := orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, o := range all {
		for _, snap := range o.Snapshots() {
			_, getErr := parcels.Get(ctx, snap.ID())
			if getErr == nil {
				continue
			}
			if !errors.Is(getErr, errs.ErrObjectNotFound) {
				return repaired, getErr
			}

			p, fromErr := parcel.FromSnapshot(o.ID(), snap)
			if fromErr != nil {
				return repaired, fromErr
			}
			if addErr := parcels.Add(ctx, p); addErr != nil {
				return repaired, addErr
			}
			repaired++
		}
	}

	return repaired, nil
}
