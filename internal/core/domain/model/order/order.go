// Package order contains the Order aggregate: a customer's shipment
// grouping one or more parcels. The order carries a denormalized snapshot
// of every parcel it owns plus a single aggregate status derived from
// them; the update workflow is responsible for keeping both in step with
// the normalized parcel records.
package order

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a shipment.
//
// Invariants:
//   - at least one embedded parcel snapshot at all times
//   - status always equals the aggregate resolution of the snapshots;
//     the update workflow re-establishes this after every parcel mutation
//   - version increases by one on every persisted mutation
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	snapshots  []parcel.Snapshot
	status     status.Status
	version    int64

	isConstructed bool
}

// NewOrder creates an order with its initial parcel snapshots and resolved
// aggregate status. Orders are created atomically with their parcels; an
// order without parcels is malformed.
func NewOrder(
	id, customerID kernel.UUID,
	snapshots []parcel.Snapshot,
	aggregate status.Status,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSnapshots(id, snapshots),
		o.setStatus(aggregate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id, customerID kernel.UUID,
	snapshots []parcel.Snapshot,
	aggregate status.Status,
	version int64,
) (*Order, error) {
	o, err := NewOrder(id, customerID, snapshots, aggregate)
	if err != nil {
		return nil, err
	}

	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the order's aggregate status.
func (o *Order) Status() status.Status {
	return o.status
}

// Version returns the optimistic concurrency token the order was loaded
// with.
func (o *Order) Version() int64 {
	return o.version
}

// Snapshots returns a copy of the embedded parcel snapshots, in creation
// order.
func (o *Order) Snapshots() []parcel.Snapshot {
	out := make([]parcel.Snapshot, len(o.snapshots))
	copy(out, o.snapshots)
	return out
}

// FindSnapshot returns the embedded snapshot for the given parcel id.
func (o *Order) FindSnapshot(parcelID kernel.UUID) (parcel.Snapshot, bool) {
	for _, s := range o.snapshots {
		if s.ID().IsEqual(parcelID) {
			return s, true
		}
	}
	return parcel.Snapshot{}, false
}

// ReplaceSnapshot swaps the embedded snapshot matching the parcel id for
// the given one, leaving every other snapshot untouched. Returns
// ObjectNotFoundError when the order does not own that parcel.
func (o *Order) ReplaceSnapshot(snap parcel.Snapshot) error {
	for i, s := range o.snapshots {
		if s.ID().IsEqual(snap.ID()) {
			o.snapshots[i] = snap
			return nil
		}
	}
	return errs.NewObjectNotFoundError("parcelId", snap.ID().String())
}

// SetAggregateStatus records the freshly resolved aggregate status.
func (o *Order) SetAggregateStatus(s status.Status) error {
	return o.setStatus(s)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setSnapshots(id kernel.UUID, snapshots []parcel.Snapshot) error {
	if len(snapshots) == 0 {
		return errs.NewMalformedOrderError(id.String())
	}
	o.snapshots = make([]parcel.Snapshot, len(snapshots))
	copy(o.snapshots, snapshots)
	return nil
}

func (o *Order) setStatus(s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}
