// Package tracking contains the immutable tracking Event entity: one
// append-only audit record per status transition, forming the full history
// of a parcel.
package tracking

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not
// created through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event records a single status transition on a parcel. Events are never
// mutated once written; history is read newest-first for display.
type Event struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    status.Status
	timestamp time.Time
	actorID   kernel.UUID
	location  string
	notes     string

	isConstructed bool
}

// NewEvent creates a tracking event for a transition into the given status.
func NewEvent(
	id, parcelID kernel.UUID,
	transitionedTo status.Status,
	timestamp time.Time,
	actorID kernel.UUID,
	location, notes string,
) (*Event, error) {
	e := &Event{
		location:      location,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setParcelID(parcelID),
		e.setStatus(transitionedTo),
		e.setTimestamp(timestamp),
		e.setActorID(actorID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id, parcelID kernel.UUID,
	transitionedTo status.Status,
	timestamp time.Time,
	actorID kernel.UUID,
	location, notes string,
) (*Event, error) {
	return NewEvent(id, parcelID, transitionedTo, timestamp, actorID, location, notes)
}

// Validate ensures the Event was created through a factory function.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel the event belongs to.
func (e *Event) ParcelID() kernel.UUID {
	return e.parcelID
}

// Status returns the status the parcel transitioned to.
func (e *Event) Status() status.Status {
	return e.status
}

// Timestamp returns when the transition happened.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// ActorID returns the identifier of the actor who performed the transition.
func (e *Event) ActorID() kernel.UUID {
	return e.actorID
}

// Location returns where the transition was recorded.
func (e *Event) Location() string {
	return e.location
}

// Notes returns the optional free-form note attached to the transition.
func (e *Event) Notes() string {
	return e.notes
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *Event) setStatus(s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.status = s
	return nil
}

func (e *Event) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	e.timestamp = timestamp
	return nil
}

func (e *Event) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	e.actorID = actorID
	return nil
}
