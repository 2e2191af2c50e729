package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their embedded parcel snapshots.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (embedded snapshots and
	// aggregate status). Compare-and-set on the loaded version; fails with
	// ConcurrentModificationError when the record changed in between.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order. Used by the mirror repair job to scan
	// embedded snapshots for missing normalized records.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// ScanForParcel finds the order whose embedded list contains the given
	// parcel. Recovery fallback for parcels that were never mirrored into
	// the normalized store. Returns ObjectNotFoundError when no order
	// embeds the parcel.
	ScanForParcel(ctx context.Context, parcelID kernel.UUID) (*order.Order, error)

	// Remove deletes the order record. Parcel cleanup is a separate write;
	// tracking events are retained as the audit trail.
	Remove(ctx context.Context, id kernel.UUID) error
}
