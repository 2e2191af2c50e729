// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This is the denormalized half of the dual store:
// each order row embeds a JSONB copy of its parcels, kept in step with the
// normalized parcel table by the application layer rather than the database.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// Snapshots carries the embedded parcel copies as a JSONB document so the
// whole order, parcels included, is readable in one row. Version backs the
// compare-and-set writes that guard against lost updates.
type OrderDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;index"`
	Status     string        `gorm:"index"`
	Snapshots  SnapshotsJSON `gorm:"type:jsonb"`
	Version    int64
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

// SnapshotJSON is the JSONB shape of one embedded parcel copy.
type SnapshotJSON struct {
	ID                   string   `json:"id"`
	Status               string   `json:"status"`
	TrackingNumber       string   `json:"tracking_number"`
	Weight               *float64 `json:"weight,omitempty"`
	DeclaredValue        *float64 `json:"declared_value,omitempty"`
	PhotoURLs            []string `json:"photo_urls,omitempty"`
	InternalTrackingCode string   `json:"internal_tracking_code,omitempty"`
}

// SnapshotsJSON maps the embedded parcel list to a single JSONB column.
type SnapshotsJSON []SnapshotJSON

// Value implements driver.Valuer, serializing the list for storage.
func (s SnapshotsJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner, deserializing the stored JSONB document.
func (s *SnapshotsJSON) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for snapshots column: %T", value)
	}

	return json.Unmarshal(raw, s)
}

func fromDomain(o *order.Order) OrderDTO {
	snapshots := o.Snapshots()
	jsonSnaps := make(SnapshotsJSON, 0, len(snapshots))
	for _, snap := range snapshots {
		jsonSnaps = append(jsonSnaps, SnapshotJSON{
			ID:                   snap.ID().String(),
			Status:               snap.Status().String(),
			TrackingNumber:       snap.TrackingNumber(),
			Weight:               snap.Weight(),
			DeclaredValue:        snap.DeclaredValue(),
			PhotoURLs:            snap.PhotoURLs(),
			InternalTrackingCode: snap.InternalTrackingCode(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		Status:     o.Status().String(),
		Snapshots:  jsonSnaps,
		Version:    o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	aggregate, err := status.FromString(dto.Status)
	if err != nil {
		return nil, err
	}

	snapshots := make([]parcel.Snapshot, 0, len(dto.Snapshots))
	for _, js := range dto.Snapshots {
		snap, snapErr := snapshotToDomain(js)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshots = append(snapshots, snap)
	}

	return order.RestoreOrder(id, customerID, snapshots, aggregate, dto.Version)
}

func snapshotToDomain(js SnapshotJSON) (parcel.Snapshot, error) {
	id, err := kernel.UUIDFromString(js.ID)
	if err != nil {
		return parcel.Snapshot{}, err
	}

	s, err := status.FromString(js.Status)
	if err != nil {
		return parcel.Snapshot{}, err
	}

	return parcel.RestoreSnapshot(
		id, s, js.TrackingNumber,
		js.Weight, js.DeclaredValue, js.PhotoURLs, js.InternalTrackingCode,
	)
}
