// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. This is the normalized half of the dual store: one
// row per parcel, the authoritative record for per-parcel reads and writes.
package parcelrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ParcelDTO represents the database structure for persisting parcels.
// Status is stored under its wire name so rows stay readable and the column
// survives reordering of the enumeration. Version backs the compare-and-set
// writes that guard against lost updates.
type ParcelDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;index"`
	Status               string    `gorm:"index"`
	TrackingNumber       string
	Weight               *float64
	DeclaredValue        *float64
	PhotoURLs            pq.StringArray `gorm:"type:text[]"`
	InternalTrackingCode string
	Version              int64
}

// TableName specifies the database table name for parcel records.
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                   p.ID().Bytes(),
		OrderID:              p.OrderID().Bytes(),
		Status:               p.Status().String(),
		TrackingNumber:       p.TrackingNumber(),
		Weight:               p.Weight(),
		DeclaredValue:        p.DeclaredValue(),
		PhotoURLs:            pq.StringArray(p.PhotoURLs()),
		InternalTrackingCode: p.InternalTrackingCode(),
		Version:              p.Version(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	s, err := status.FromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, orderID, s,
		dto.TrackingNumber,
		dto.Weight, dto.DeclaredValue,
		[]string(dto.PhotoURLs),
		dto.InternalTrackingCode,
		dto.Version,
	)
}
