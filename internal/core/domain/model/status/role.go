package status

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Role identifies one of the four operational actor kinds. A role's write
// access is gated by the region phases it owns, not by global pipeline
// position: an agent may jump ahead within its own phase but never touch a
// status from a phase it does not own.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// OriginAgent handles origin-country processing.
	OriginAgent

	// HubAgent handles hub-country transit.
	HubAgent

	// DestinationAgent handles destination-country delivery.
	DestinationAgent

	// Administrator owns all three phases, origin first.
	Administrator
)

// rolePhases is the static role-to-ownership table. Permission is data, not
// control flow: changing a role's reach means editing this table.
var rolePhases = map[Role][]Phase{
	OriginAgent:      {OriginPhase},
	HubAgent:         {HubPhase},
	DestinationAgent: {DestinationPhase},
	Administrator:    phaseOrder,
}

var roleStatuses = buildRoleStatuses()

// buildRoleStatuses concatenates each role's owned phase windows in phase
// order, keeping the first occurrence of shared boundary statuses so the
// sequence stays strictly ordered.
func buildRoleStatuses() map[Role][]Status {
	out := make(map[Role][]Status, len(rolePhases))
	for role, phases := range rolePhases {
		seen := make(map[Status]bool)
		var owned []Status
		for _, p := range phases {
			for _, s := range phaseStatuses[p] {
				if seen[s] {
					continue
				}
				seen[s] = true
				owned = append(owned, s)
			}
		}
		out[role] = owned
	}
	return out
}

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:      "unknown",
		OriginAgent:      "origin_agent",
		HubAgent:         "hub_agent",
		DestinationAgent: "destination_agent",
		Administrator:    "administrator",
	}
}

// OwnedStatuses returns a copy of the ordered status sequence the role may
// operate on: its owned phase windows concatenated in phase order, with
// shared boundary statuses deduplicated.
func (r Role) OwnedStatuses() []Status {
	src := roleStatuses[r]
	out := make([]Status, len(src))
	copy(out, src)
	return out
}

// Owns reports whether the status belongs to one of the role's phases.
// IssueReported belongs to no phase and is owned by no role.
func (r Role) Owns(s Status) bool {
	for _, owned := range roleStatuses[r] {
		if owned == s {
			return true
		}
	}
	return false
}

// Validate checks that the Role is one of the four operational actor kinds.
func (r Role) Validate() error {
	if _, ok := rolePhases[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical wire name of the role, e.g. "origin_agent".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a canonical wire name into a Role.
func RoleFromString(raw string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == raw {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", raw))
}
