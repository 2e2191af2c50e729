// Package parcel contains the Parcel aggregate: a single physical package
// moving through the three-region pipeline. A parcel is owned by exactly
// one order and exists in two physical representations — the normalized
// record managed here and an embedded snapshot inside its parent order —
// which the update workflow keeps equal.
package parcel

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through one of the factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel, RestoreParcel, or FromSnapshot")

// Parcel represents one physical package inside an order.
//
// Invariants:
//   - id and orderID are valid UUIDs; orderID never changes once created
//   - currentStatus is always a member of the status enumeration
//   - version increases by one on every persisted mutation
//
// Parcels are mutated only through the update workflow; they are never
// deleted except as part of whole-order deletion.
type Parcel struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	currentStatus        status.Status
	trackingNumber       string
	weight               *float64
	declaredValue        *float64
	photoURLs            []string
	internalTrackingCode string
	version              int64

	isConstructed bool
}

// NewParcel creates a parcel at the start of the pipeline
// (PurchasedFromSeller). Used when an order is placed, one parcel per line
// item.
func NewParcel(id, orderID kernel.UUID, trackingNumber string) (*Parcel, error) {
	p := &Parcel{
		currentStatus: status.PurchasedFromSeller,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence.
func RestoreParcel(
	id, orderID kernel.UUID,
	currentStatus status.Status,
	trackingNumber string,
	weight, declaredValue *float64,
	photoURLs []string,
	internalTrackingCode string,
	version int64,
) (*Parcel, error) {
	p := &Parcel{
		internalTrackingCode: internalTrackingCode,
		version:              version,
		isConstructed:        true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setTrackingNumber(trackingNumber),
		p.setStatus(currentStatus),
	); err != nil {
		return nil, err
	}

	p.weight = copyFloat(weight)
	p.declaredValue = copyFloat(declaredValue)
	p.photoURLs = copyStrings(photoURLs)
	return p, nil
}

// FromSnapshot materializes a normalized parcel record from an embedded
// order snapshot. Used by the recovery path when a parcel exists only
// inside its parent order. The materialized record starts at version 0.
func FromSnapshot(orderID kernel.UUID, snap Snapshot) (*Parcel, error) {
	return RestoreParcel(
		snap.ID(),
		orderID,
		snap.Status(),
		snap.TrackingNumber(),
		snap.Weight(),
		snap.DeclaredValue(),
		snap.PhotoURLs(),
		snap.InternalTrackingCode(),
		0,
	)
}

// Validate ensures the Parcel was created through a factory function.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the owning order.
func (p *Parcel) OrderID() kernel.UUID {
	return p.orderID
}

// Status returns the parcel's current pipeline status.
func (p *Parcel) Status() status.Status {
	return p.currentStatus
}

// TrackingNumber returns the carrier tracking number.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Weight returns the declared weight, or nil when not recorded.
func (p *Parcel) Weight() *float64 {
	return copyFloat(p.weight)
}

// DeclaredValue returns the declared customs value, or nil when not
// recorded.
func (p *Parcel) DeclaredValue() *float64 {
	return copyFloat(p.declaredValue)
}

// PhotoURLs returns a copy of the attached photo URLs.
func (p *Parcel) PhotoURLs() []string {
	return copyStrings(p.photoURLs)
}

// InternalTrackingCode returns the internal warehouse code, empty when not
// assigned.
func (p *Parcel) InternalTrackingCode() string {
	return p.internalTrackingCode
}

// Version returns the optimistic concurrency token the parcel was loaded
// with.
func (p *Parcel) Version() int64 {
	return p.version
}

// ChangeStatus moves the parcel to the given status. Transition legality
// per actor role is the transition policy's concern; this method only
// rejects values outside the enumeration.
func (p *Parcel) ChangeStatus(s status.Status) error {
	return p.setStatus(s)
}

// FlagIssue attaches the out-of-band exception flag regardless of pipeline
// position.
func (p *Parcel) FlagIssue() {
	p.currentStatus = status.IssueReported
}

// ApplyPatch merges the metadata patch into the parcel. Absent fields are
// left untouched.
func (p *Parcel) ApplyPatch(patch Patch) {
	if patch.Weight != nil {
		p.weight = copyFloat(patch.Weight)
	}
	if patch.DeclaredValue != nil {
		p.declaredValue = copyFloat(patch.DeclaredValue)
	}
	if patch.PhotoURLs != nil {
		p.photoURLs = copyStrings(patch.PhotoURLs)
	}
	if patch.InternalTrackingCode != nil {
		p.internalTrackingCode = *patch.InternalTrackingCode
	}
}

// Snapshot produces the embedded representation mirrored into the parent
// order.
func (p *Parcel) Snapshot() Snapshot {
	return Snapshot{
		id:                   p.id,
		currentStatus:        p.currentStatus,
		trackingNumber:       p.trackingNumber,
		weight:               copyFloat(p.weight),
		declaredValue:        copyFloat(p.declaredValue),
		photoURLs:            copyStrings(p.photoURLs),
		internalTrackingCode: p.internalTrackingCode,
	}
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setStatus(s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.currentStatus = s
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
