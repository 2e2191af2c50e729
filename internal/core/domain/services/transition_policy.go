package services

import (
	"shiptrack/internal/core/domain/model/status"
)

// TransitionPolicy is the domain service deciding which statuses an actor
// may legally set next. Region ownership, not global pipeline position,
// gates transitions: an agent may jump ahead to any later status within the
// phases its role owns (skipping intermediate checkpoints), but can never
// reach into a phase it does not own.
//
// Example:
//
//	policy := services.NewTransitionPolicy()
//	next := policy.NextAllowed(status.OriginAgent, status.ReceivedAtOrigin)
//	// next: [QC_CHECKED, PACKED_AT_ORIGIN, READY_TO_SHIP_HUB, SHIPPED_TO_HUB]
type TransitionPolicy struct{}

// NewTransitionPolicy creates a TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// NextAllowed returns the ordered set of statuses the role may set from the
// current one: every status strictly after the current one within the
// role's owned phase sequence. The result is empty when the current status
// does not belong to the role's phases, including when it is IssueReported
// (which belongs to no phase) — the role has no legal move from there.
func (TransitionPolicy) NextAllowed(role status.Role, current status.Status) []status.Status {
	owned := role.OwnedStatuses()

	idx := -1
	for i, s := range owned {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	out := make([]status.Status, len(owned)-idx-1)
	copy(out, owned[idx+1:])
	return out
}

// IsAllowed reports whether the role may move a parcel from current to
// requested in one step.
func (p TransitionPolicy) IsAllowed(role status.Role, current, requested status.Status) bool {
	for _, s := range p.NextAllowed(role, current) {
		if s == requested {
			return true
		}
	}
	return false
}
