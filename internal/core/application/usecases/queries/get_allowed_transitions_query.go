// Package queries contains read-only operations over the dual store.
// Query handlers bypass the domain repositories and read the database
// directly, returning flat response structs shaped for the caller.
package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

var ErrGetAllowedTransitionsQueryIsNotConstructed = errors.New(
	"GetAllowedTransitionsQuery must be created via NewGetAllowedTransitionsQuery constructor",
)

// GetAllowedTransitionsQuery asks which statuses a given role may move a
// parcel to from its current position. This is what a client renders as the
// action menu for an agent looking at a parcel.
//
// Example:
//
//	query, err := NewGetAllowedTransitionsQuery(parcelID, status.OriginAgent)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetAllowedTransitionsQuery struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorRole status.Role

	guard guard.ConstructorGuard
}

// NewGetAllowedTransitionsQuery creates a validated transitions query.
func NewGetAllowedTransitionsQuery(
	parcelID kernel.UUID,
	actorRole status.Role,
) (GetAllowedTransitionsQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetAllowedTransitionsQuery{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return GetAllowedTransitionsQuery{}, err
	}

	return GetAllowedTransitionsQuery{
		parcelID:  parcelID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllowedTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedTransitionsQueryIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to inspect.
func (q GetAllowedTransitionsQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// ActorRole returns the role the transitions are computed for.
func (q GetAllowedTransitionsQuery) ActorRole() status.Role {
	return q.actorRole
}

// GetAllowedTransitionsQueryResponse carries the parcel's current status
// and the forward statuses the role may request, in pipeline order. Allowed
// is empty when the parcel is outside the role's span or flagged with an
// issue.
type GetAllowedTransitionsQueryResponse struct {
	ParcelID      kernel.UUID
	CurrentStatus status.Status
	Allowed       []status.Status
}
