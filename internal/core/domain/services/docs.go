// Package services contains stateless domain services that operate across
// aggregates: the role-scoped transition policy deciding which statuses an
// actor may set next, and the aggregate resolver deriving an order's single
// representative status from its parcels.
package services
