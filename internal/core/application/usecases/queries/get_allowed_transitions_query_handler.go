package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllowedTransitionsQueryHandler reads a parcel's current status from
// the normalized table and computes the role's reachable statuses with the
// transition policy.
type GetAllowedTransitionsQueryHandler struct {
	db     *gorm.DB
	policy services.TransitionPolicy
}

// NewGetAllowedTransitionsQueryHandler creates a handler for transition
// queries.
func NewGetAllowedTransitionsQueryHandler(db *gorm.DB) GetAllowedTransitionsQueryHandler {
	return GetAllowedTransitionsQueryHandler{
		db:     db,
		policy: services.NewTransitionPolicy(),
	}
}

// Handle executes the query. Returns ObjectNotFoundError when no parcel
// record exists under the given ID.
func (h GetAllowedTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllowedTransitionsQuery,
) (GetAllowedTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllowedTransitionsQueryResponse{}, err
	}

	var rawStatus string
	err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Scan(&rawStatus).Error
	if err != nil {
		return GetAllowedTransitionsQueryResponse{}, err
	}
	if rawStatus == "" {
		return GetAllowedTransitionsQueryResponse{},
			errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	current, err := status.FromString(rawStatus)
	if err != nil {
		return GetAllowedTransitionsQueryResponse{}, err
	}

	return GetAllowedTransitionsQueryResponse{
		ParcelID:      query.ParcelID(),
		CurrentStatus: current,
		Allowed:       h.policy.NextAllowed(query.ActorRole(), current),
	}, nil
}
