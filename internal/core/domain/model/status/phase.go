package status

// Phase is one of the three agent-owned regional windows over the pipeline.
// Adjacent phases intentionally share their boundary status (the "shipped
// to X" handoff), so the agent who set it can still see and act on it.
type Phase int

const (
	// OriginPhase covers origin-country processing up to the hub handoff.
	OriginPhase Phase = iota + 1

	// HubPhase covers hub-country transit, from the hub handoff to the
	// destination handoff.
	HubPhase

	// DestinationPhase covers destination-country delivery, from the
	// destination handoff to final delivery.
	DestinationPhase
)

var phaseStatuses = map[Phase][]Status{
	OriginPhase: {
		PurchasedFromSeller,
		InTransitToOriginAgent,
		ReceivedAtOrigin,
		QCChecked,
		PackedAtOrigin,
		ReadyToShipHub,
		ShippedToHub,
	},
	HubPhase: {
		ShippedToHub,
		ArrivedHub,
		Repacking,
		ReadyToShipDestination,
		ShippedToDestination,
	},
	DestinationPhase: {
		ShippedToDestination,
		ArrivedDestination,
		OutForDelivery,
		Delivered,
	},
}

// phaseOrder fixes the concatenation order used for roles owning several
// phases: origin first, then hub, then destination.
var phaseOrder = []Phase{OriginPhase, HubPhase, DestinationPhase}

// Statuses returns a copy of the ordered status window owned by the phase.
func (p Phase) Statuses() []Status {
	src := phaseStatuses[p]
	out := make([]Status, len(src))
	copy(out, src)
	return out
}

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case OriginPhase:
		return "origin"
	case HubPhase:
		return "hub"
	case DestinationPhase:
		return "destination"
	}
	return "unknown"
}
