package services

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// AggregateResolver is the domain service deriving an order's single
// representative status from its parcels: the order is only as advanced as
// its least-advanced parcel.
//
// Issue-flagged parcels carry no rank and are skipped when taking the
// minimum, so a single reported issue does not surface at the order level;
// read-side consumers expose a separate issue indicator instead of changing
// this rule.
type AggregateResolver struct{}

// NewAggregateResolver creates an AggregateResolver instance.
func NewAggregateResolver() AggregateResolver {
	return AggregateResolver{}
}

// Resolve computes the aggregate status for a non-empty snapshot list.
//
//   - one parcel: its status verbatim, IssueReported included
//   - several parcels: the ranked status with the minimum rank, skipping
//     issue-flagged parcels
//   - every parcel issue-flagged: IssueReported rather than an error
//   - empty list: MalformedOrderError, identifying the order when known
//
// Resolve is a pure function of its input.
func (AggregateResolver) Resolve(orderID kernel.UUID, snapshots []parcel.Snapshot) (status.Status, error) {
	if len(snapshots) == 0 {
		return status.Unknown, errs.NewMalformedOrderError(orderID.String())
	}

	if len(snapshots) == 1 {
		return snapshots[0].Status(), nil
	}

	lowest := status.Unknown
	lowestRank := -1
	for _, snap := range snapshots {
		rank, ok := snap.Status().Rank()
		if !ok {
			continue
		}
		if lowestRank < 0 || rank < lowestRank {
			lowest = snap.Status()
			lowestRank = rank
		}
	}

	if lowestRank < 0 {
		return status.IssueReported, nil
	}
	return lowest, nil
}
