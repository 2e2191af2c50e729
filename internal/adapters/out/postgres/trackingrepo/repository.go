package trackingrepo

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM tracking event
// repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Append saves a new event to the log.
func (r *GormTrackingEventRepository) Append(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByParcel retrieves a parcel's events, newest first.
func (r *GormTrackingEventRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	if err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("timestamp DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
