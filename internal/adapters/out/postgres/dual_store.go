// Package postgres provides the GORM-based implementation of the dual
// store: the normalized parcels table, the orders table with its embedded
// JSONB parcel copies, and the append-only tracking event log.
//
// The three stores are deliberately not wrapped in a database transaction.
// Handlers sequence their writes and surface partial completion explicitly;
// the drift that independent writes can produce is repaired by the recovery
// read in the application layer and the periodic mirror repair sweep.
package postgres

import (
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/parcelrepo"
	"shiptrack/internal/adapters/out/postgres/trackingrepo"
	"shiptrack/internal/core/ports"

	"gorm.io/gorm"
)

// GormDualStoreFactory creates DualStore instances sharing one GORM
// connection pool.
type GormDualStoreFactory struct {
	db *gorm.DB
}

// NewGormDualStoreFactory creates a factory for GORM-based dual store
// instances.
func NewGormDualStoreFactory(db *gorm.DB) *GormDualStoreFactory {
	return &GormDualStoreFactory{db: db}
}

// Create produces a DualStore for one business operation.
func (f *GormDualStoreFactory) Create() ports.DualStore {
	return &GormDualStore{db: f.db}
}

// GormDualStore groups the three repositories behind one access point so
// handlers obtain them consistently.
type GormDualStore struct {
	db *gorm.DB
}

// ParcelRepository provides access to the normalized parcel store.
func (s *GormDualStore) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(s.db)
}

// OrderRepository provides access to the order store.
func (s *GormDualStore) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(s.db)
}

// TrackingEventRepository provides access to the append-only event log.
func (s *GormDualStore) TrackingEventRepository() ports.TrackingEventRepository {
	return trackingrepo.NewGormTrackingEventRepository(s.db)
}
