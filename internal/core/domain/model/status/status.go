// Package status defines the parcel lifecycle taxonomy: the ordered
// pipeline of statuses a parcel moves through, the out-of-band issue flag,
// the three region phases that partition the pipeline, and the actor roles
// that own those phases.
package status

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Status represents a parcel's position in the three-region pipeline.
//
// The pipeline runs origin-country processing, then hub-country transit,
// then destination-country delivery:
//
//	PurchasedFromSeller ─> ... ─> ShippedToHub ─> ... ─> ShippedToDestination ─> ... ─> Delivered
//
// IssueReported sits outside the pipeline: it can be attached at any point
// and carries no rank.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	PurchasedFromSeller
	InTransitToOriginAgent
	ReceivedAtOrigin
	QCChecked
	PackedAtOrigin
	ReadyToShipHub
	ShippedToHub
	ArrivedHub
	Repacking
	ReadyToShipDestination
	ShippedToDestination
	ArrivedDestination
	OutForDelivery
	Delivered

	// IssueReported flags an exception on a parcel. It is not part of the
	// ordered pipeline and has no rank.
	IssueReported
)

// pipeline is the single source of truth for pipeline ordering. Rank is
// derived from position in this slice, not from the const declaration
// order, so reordering the declarations for readability cannot silently
// change aggregation semantics.
var pipeline = []Status{
	PurchasedFromSeller,
	InTransitToOriginAgent,
	ReceivedAtOrigin,
	QCChecked,
	PackedAtOrigin,
	ReadyToShipHub,
	ShippedToHub,
	ArrivedHub,
	Repacking,
	ReadyToShipDestination,
	ShippedToDestination,
	ArrivedDestination,
	OutForDelivery,
	Delivered,
}

var ranks = buildRanks()

func buildRanks() map[Status]int {
	r := make(map[Status]int, len(pipeline))
	for i, s := range pipeline {
		r[s] = i
	}
	return r
}

func getStatusStrings() map[Status]string {
	m := map[Status]string{
		Unknown:                "UNKNOWN",
		PurchasedFromSeller:    "PURCHASED_FROM_SELLER",
		InTransitToOriginAgent: "IN_TRANSIT_TO_ORIGIN_AGENT",
		ReceivedAtOrigin:       "RECEIVED_AT_ORIGIN",
		QCChecked:              "QC_CHECKED",
		PackedAtOrigin:         "PACKED_AT_ORIGIN",
		ReadyToShipHub:         "READY_TO_SHIP_HUB",
		ShippedToHub:           "SHIPPED_TO_HUB",
		ArrivedHub:             "ARRIVED_HUB",
		Repacking:              "REPACKING",
		ReadyToShipDestination: "READY_TO_SHIP_DESTINATION",
		ShippedToDestination:   "SHIPPED_TO_DESTINATION",
		ArrivedDestination:     "ARRIVED_DESTINATION",
		OutForDelivery:         "OUT_FOR_DELIVERY",
		Delivered:              "DELIVERED",
		IssueReported:          "ISSUE_REPORTED",
	}
	return m
}

var statusValues = buildStatusValues()

func buildStatusValues() map[string]Status {
	m := make(map[string]Status, len(pipeline)+1)
	for s, str := range getStatusStrings() {
		if s == Unknown {
			continue
		}
		m[str] = s
	}
	return m
}

// Pipeline returns a copy of the full ordered status list, excluding
// IssueReported.
func Pipeline() []Status {
	out := make([]Status, len(pipeline))
	copy(out, pipeline)
	return out
}

// Rank returns the status's index in the ordered pipeline. The second
// return value is false for IssueReported and invalid statuses; callers
// must special-case those before relying on the rank.
func (s Status) Rank() (int, bool) {
	r, ok := ranks[s]
	return r, ok
}

// Validate checks that the Status is one of the enumerated values.
// IssueReported is valid; Unknown and out-of-range values are not.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := ranks[s]; !ok && s != IssueReported {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical wire name of the status, e.g.
// "RECEIVED_AT_ORIGIN". It implements fmt.Stringer and is safe to call on
// any value, returning "UNKNOWN" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// FromString parses a canonical wire name into a Status. Unknown names are
// rejected.
func FromString(raw string) (Status, error) {
	if s, ok := statusValues[raw]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", raw))
}
