package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only tracking event log. Events are never updated or deleted.
type TrackingEventRepository interface {
	// Append persists a new tracking event.
	Append(ctx context.Context, event *tracking.Event) error

	// GetByParcel retrieves the parcel's full history, newest first.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error)
}
