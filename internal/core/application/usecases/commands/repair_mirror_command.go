package commands

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

// ErrRepairMirrorCommandIsNotConstructed is returned when the command was
// not created through its constructor.
var ErrRepairMirrorCommandIsNotConstructed = errors.New(
	"RepairMirrorCommand must be created via NewRepairMirrorCommand constructor",
)

// RepairMirrorCommand triggers one sweep of the dual store looking for
// embedded parcel snapshots whose normalized record is missing. Carries no
// parameters; the sweep always covers every order.
type RepairMirrorCommand struct {
	guard guard.ConstructorGuard
}

// NewRepairMirrorCommand creates a repair sweep request.
func NewRepairMirrorCommand() RepairMirrorCommand {
	return RepairMirrorCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RepairMirrorCommand) Validate() error {
	return c.guard.Validate(ErrRepairMirrorCommandIsNotConstructed)
}
