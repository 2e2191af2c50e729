package queries

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads a parcel's event log from the
// database, newest first.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for history queries.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown parcel yields an empty history, not
// an error: the log is the only store that never forgets, so absence of
// rows is a real answer.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetTrackingHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			status,
			timestamp,
			actor_id,
			location,
			notes
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY timestamp DESC
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, parcelID, actorID uuid.UUID
			rawStatus             string
			timestamp             time.Time
			location, notes       string
		)

		if err = rows.Scan(
			&id, &parcelID, &rawStatus, &timestamp, &actorID, &location, &notes,
		); err != nil {
			return nil, err
		}

		resp, mapErr := historyRow(id, parcelID, rawStatus, timestamp, actorID, location, notes)
		if mapErr != nil {
			return nil, mapErr
		}
		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func historyRow(
	id, parcelID uuid.UUID,
	rawStatus string,
	timestamp time.Time,
	actorID uuid.UUID,
	location, notes string,
) (GetTrackingHistoryQueryResponse, error) {
	eventID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	pID, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	aID, err := kernel.UUIDFromBytes(actorID[:])
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	s, err := status.FromString(rawStatus)
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	return GetTrackingHistoryQueryResponse{
		ID:        eventID,
		ParcelID:  pID,
		Status:    s,
		Timestamp: timestamp,
		ActorID:   aID,
		Location:  location,
		Notes:     notes,
	}, nil
}
