package ports

// DualStore groups the three record stores behind the workflow: normalized
// parcels, orders with embedded snapshots, and the tracking event log.
// Unlike a unit of work there is no Begin/Commit — the store explicitly
// offers no multi-record atomicity, matching the underlying collections.
type DualStore interface {
	ParcelRepository() ParcelRepository
	OrderRepository() OrderRepository
	TrackingEventRepository() TrackingEventRepository
}

// DualStoreFactory creates DualStore instances, one per business operation.
type DualStoreFactory interface {
	Create() DualStore
}
