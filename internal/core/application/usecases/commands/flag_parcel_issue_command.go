package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrFlagParcelIssueCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrFlagParcelIssueCommandIsNotConstructed = errors.New(
	"FlagParcelIssueCommand must be created via NewFlagParcelIssueCommand constructor",
)

// FlagParcelIssueCommand represents a request to attach the out-of-band
// issue flag to a parcel. The flag sits outside the ordered pipeline and
// can be attached from any position by any operational role; it is
// therefore not routed through the transition policy.
type FlagParcelIssueCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorID   kernel.UUID
	actorRole status.Role
	location  string
	notes     string

	guard guard.ConstructorGuard
}

// NewFlagParcelIssueCommand creates a validated issue report. Notes are
// required: an issue without a description is useless to whoever triages
// it.
func NewFlagParcelIssueCommand(
	parcelID, actorID kernel.UUID,
	actorRole status.Role,
	location, notes string,
) (FlagParcelIssueCommand, error) {
	cmd := FlagParcelIssueCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
		cmd.setNotes(notes),
	); err != nil {
		return FlagParcelIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagParcelIssueCommand) Validate() error {
	return c.guard.Validate(ErrFlagParcelIssueCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to flag.
func (c FlagParcelIssueCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the identifier of the reporting user.
func (c FlagParcelIssueCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the asserted role of the reporting user.
func (c FlagParcelIssueCommand) ActorRole() status.Role {
	return c.actorRole
}

// Location returns where the issue was observed.
func (c FlagParcelIssueCommand) Location() string {
	return c.location
}

// Notes returns the issue description.
func (c FlagParcelIssueCommand) Notes() string {
	return c.notes
}

func (c *FlagParcelIssueCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *FlagParcelIssueCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *FlagParcelIssueCommand) setActorRole(actorRole status.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}

func (c *FlagParcelIssueCommand) setNotes(notes string) error {
	if notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}
	c.notes = notes
	return nil
}
