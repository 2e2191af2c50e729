package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves a parcel's audit trail, newest event
// first. The trail survives order deletion, so history can be queried for
// parcels that no longer exist.
type GetTrackingHistoryQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a validated history query.
func NewGetTrackingHistoryQuery(parcelID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// ParcelID returns the identifier of the parcel whose history is wanted.
func (q GetTrackingHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetTrackingHistoryQueryResponse represents one logged status event.
type GetTrackingHistoryQueryResponse struct {
	ID        kernel.UUID
	ParcelID  kernel.UUID
	Status    status.Status
	Timestamp time.Time
	ActorID   kernel.UUID
	Location  string
	Notes     string
}
