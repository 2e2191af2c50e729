// Package ports defines the persistence contracts the application core
// depends on. The dual store offers record-level reads and writes for
// parcels, orders, and tracking events with no cross-collection atomicity:
// coordinating multi-record changes — and surfacing partial completion —
// is the caller's responsibility.
package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for normalized parcel
// records.
type ParcelRepository interface {
	// Add persists a new parcel record. Also used by the recovery path to
	// materialize a record found only inside an order's embedded list.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel. The write is
	// compare-and-set on the version the aggregate was loaded with and
	// fails with ConcurrentModificationError when the record changed in
	// between.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier. Returns
	// ObjectNotFoundError when no normalized record exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// RemoveByOrder deletes every parcel owned by the order. Used only by
	// the whole-order cascade delete.
	RemoveByOrder(ctx context.Context, orderID kernel.UUID) error
}
