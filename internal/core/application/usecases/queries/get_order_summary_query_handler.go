package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one order row and unpacks its JSONB
// parcel list into the summary response.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary
// queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Status     string
	Snapshots  []byte
}

// snapshotRow mirrors the JSONB shape written by the order repository.
type snapshotRow struct {
	ID                   string   `json:"id"`
	Status               string   `json:"status"`
	TrackingNumber       string   `json:"tracking_number"`
	Weight               *float64 `json:"weight"`
	DeclaredValue        *float64 `json:"declared_value"`
	PhotoURLs            []string `json:"photo_urls"`
	InternalTrackingCode string   `json:"internal_tracking_code"`
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// does not exist.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var row orderSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			snapshots
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().
		Scan(&row.ID, &row.CustomerID, &row.Status, &row.Snapshots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderSummaryQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderSummaryQueryResponse{}, err
	}

	return h.buildResponse(row)
}

func (h GetOrderSummaryQueryHandler) buildResponse(
	row orderSummaryRow,
) (GetOrderSummaryQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	aggregate, err := status.FromString(row.Status)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var snapshots []snapshotRow
	if len(row.Snapshots) > 0 {
		if err = json.Unmarshal(row.Snapshots, &snapshots); err != nil {
			return GetOrderSummaryQueryResponse{}, err
		}
	}

	resp := GetOrderSummaryQueryResponse{
		ID:         id,
		CustomerID: customerID,
		Status:     aggregate,
		Parcels:    make([]OrderParcelSummary, 0, len(snapshots)),
	}

	for _, snap := range snapshots {
		parcelID, idErr := kernel.UUIDFromString(snap.ID)
		if idErr != nil {
			return GetOrderSummaryQueryResponse{}, idErr
		}

		s, statusErr := status.FromString(snap.Status)
		if statusErr != nil {
			return GetOrderSummaryQueryResponse{}, statusErr
		}
		if s == status.IssueReported {
			resp.HasReportedIssues = true
		}

		resp.Parcels = append(resp.Parcels, OrderParcelSummary{
			ID:                   parcelID,
			Status:               s,
			TrackingNumber:       snap.TrackingNumber,
			Weight:               snap.Weight,
			DeclaredValue:        snap.DeclaredValue,
			PhotoURLs:            snap.PhotoURLs,
			InternalTrackingCode: snap.InternalTrackingCode,
		})
	}

	return resp, nil
}
