// Package trackingrepo provides data transfer objects and mapping functions
// for the tracking event log. The log is append-only: rows are never
// updated or deleted, they outlive even their parcel's order.
package trackingrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting tracking
// events.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Timestamp time.Time `gorm:"index"`
	ActorID   uuid.UUID `gorm:"type:uuid"`
	Location  string
	Notes     string
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(e *tracking.Event) EventDTO {
	return EventDTO{
		ID:        e.ID().Bytes(),
		ParcelID:  e.ParcelID().Bytes(),
		Status:    e.Status().String(),
		Timestamp: e.Timestamp(),
		ActorID:   e.ActorID().Bytes(),
		Location:  e.Location(),
		Notes:     e.Notes(),
	}
}

func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	s, err := status.FromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id, parcelID, s, dto.Timestamp, actorID, dto.Location, dto.Notes)
}
