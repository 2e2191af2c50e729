package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

// ErrUpdateParcelStatusCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new
// pipeline status, optionally merging a metadata patch, on behalf of an
// identified actor. The engine trusts the role it is given; authentication
// belongs to the caller.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(
//	    parcelID, status.QCChecked, actorID, status.OriginAgent,
//	    "Guangzhou warehouse", "passed visual inspection", parcel.Patch{},
//	)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	requested status.Status
	actorID   kernel.UUID
	actorRole status.Role
	location  string
	notes     string
	patch     parcel.Patch

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a validated status update request.
// The requested status must be a member of the enumeration; whether the
// actor may reach it from the parcel's current status is decided by the
// transition policy during handling.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	requested status.Status,
	actorID kernel.UUID,
	actorRole status.Role,
	location, notes string,
	patch parcel.Patch,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		location: location,
		notes:    notes,
		patch:    patch,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRequested(requested),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Requested returns the status the actor wants to set.
func (c UpdateParcelStatusCommand) Requested() status.Status {
	return c.requested
}

// ActorID returns the identifier of the acting user.
func (c UpdateParcelStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the asserted role of the acting user.
func (c UpdateParcelStatusCommand) ActorRole() status.Role {
	return c.actorRole
}

// Location returns where the transition is being recorded.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

// Notes returns the optional free-form note for the tracking event.
func (c UpdateParcelStatusCommand) Notes() string {
	return c.notes
}

// Patch returns the metadata patch merged alongside the status change.
func (c UpdateParcelStatusCommand) Patch() parcel.Patch {
	return c.patch
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setRequested(requested status.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	c.requested = requested
	return nil
}

func (c *UpdateParcelStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateParcelStatusCommand) setActorRole(actorRole status.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}
