// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations. All commands follow
// a consistent pattern: validation, dual-store access, and explicit
// surfacing of partial completion — the store offers no multi-record
// atomicity, so handlers sequence independent writes and report exactly
// how far they got.
package commands

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// Names of the independent write steps, reported by PartialUpdateError so
// callers know which stores already carry the change.
const (
	StepParcel        = "parcel"
	StepOrder         = "order"
	StepTrackingEvent = "tracking_event"
)

// Dual-store access interfaces for command handlers. These narrow
// abstractions let each handler declare exactly the store surface it needs.
type (
	// ParcelRepoFactory provides access to the normalized parcel store.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// OrderRepoFactory provides access to the order store.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingEventRepoFactory provides access to the append-only event log.
	TrackingEventRepoFactory interface {
		TrackingEventRepository() ports.TrackingEventRepository
	}

	// DualStore groups all three stores for handlers that coordinate the
	// denormalized pair plus the event log.
	DualStore interface {
		ParcelRepoFactory
		OrderRepoFactory
		TrackingEventRepoFactory
	}

	// DualStoreFactory creates a fresh DualStore per business operation.
	DualStoreFactory interface {
		Create() DualStore
	}
)

// loadParcelWithRecovery implements the shared load-or-materialize step:
// read the normalized parcel record, and when it is absent fall back to
// scanning orders for an embedded copy, materializing the normalized record
// before continuing. The owning order is returned when the scan already
// loaded it, so handlers can skip a second read.
func loadParcelWithRecovery(
	ctx context.Context,
	parcels ports.ParcelRepository,
	orders ports.OrderRepository,
	parcelID kernel.UUID,
) (*parcel.Parcel, *order.Order, error) {
	p, err := parcels.Get(ctx, parcelID)
	if err == nil {
		return p, nil, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, err
	}

	owner, scanErr := orders.ScanForParcel(ctx, parcelID)
	if scanErr != nil {
		if errors.Is(scanErr, errs.ErrObjectNotFound) {
			return nil, nil, errs.NewObjectNotFoundError("parcelId", parcelID.String())
		}
		return nil, nil, scanErr
	}

	snap, found := owner.FindSnapshot(parcelID)
	if !found {
		return nil, nil, errs.NewObjectNotFoundError("parcelId", parcelID.String())
	}

	p, err = parcel.FromSnapshot(owner.ID(), snap)
	if err != nil {
		return nil, nil, err
	}
	if err = parcels.Add(ctx, p); err != nil {
		return nil, nil, err
	}

	return p, owner, nil
}
