package parcel

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
)

// Snapshot is the denormalized copy of a parcel embedded inside its parent
// order. It mirrors the normalized record minus the order reference, and is
// replaced wholesale whenever the parcel changes.
type Snapshot struct {
	id                   kernel.UUID
	currentStatus        status.Status
	trackingNumber       string
	weight               *float64
	declaredValue        *float64
	photoURLs            []string
	internalTrackingCode string
}

// RestoreSnapshot reconstructs an embedded snapshot from persistence.
func RestoreSnapshot(
	id kernel.UUID,
	currentStatus status.Status,
	trackingNumber string,
	weight, declaredValue *float64,
	photoURLs []string,
	internalTrackingCode string,
) (Snapshot, error) {
	if err := id.Validate(); err != nil {
		return Snapshot{}, err
	}
	if err := currentStatus.Validate(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		id:                   id,
		currentStatus:        currentStatus,
		trackingNumber:       trackingNumber,
		weight:               copyFloat(weight),
		declaredValue:        copyFloat(declaredValue),
		photoURLs:            copyStrings(photoURLs),
		internalTrackingCode: internalTrackingCode,
	}, nil
}

// ID returns the identifier of the mirrored parcel.
func (s Snapshot) ID() kernel.UUID {
	return s.id
}

// Status returns the mirrored pipeline status.
func (s Snapshot) Status() status.Status {
	return s.currentStatus
}

// TrackingNumber returns the mirrored carrier tracking number.
func (s Snapshot) TrackingNumber() string {
	return s.trackingNumber
}

// Weight returns the mirrored weight, or nil when not recorded.
func (s Snapshot) Weight() *float64 {
	return copyFloat(s.weight)
}

// DeclaredValue returns the mirrored declared value, or nil when not
// recorded.
func (s Snapshot) DeclaredValue() *float64 {
	return copyFloat(s.declaredValue)
}

// PhotoURLs returns a copy of the mirrored photo URLs.
func (s Snapshot) PhotoURLs() []string {
	return copyStrings(s.photoURLs)
}

// InternalTrackingCode returns the mirrored internal warehouse code.
func (s Snapshot) InternalTrackingCode() string {
	return s.internalTrackingCode
}
