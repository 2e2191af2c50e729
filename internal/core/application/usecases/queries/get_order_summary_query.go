package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves one order with its embedded parcel list.
// Served entirely from the order row: the JSONB copy exists precisely so
// this read never fans out to the parcel table.
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a validated order summary query.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse represents an order and its parcels.
//
// Status is the minimum-rank aggregate, which deliberately ignores flagged
// parcels; HasReportedIssues restores that visibility so a client can show
// "PACKED_AT_ORIGIN, 1 issue" instead of silently hiding the problem.
type GetOrderSummaryQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	Status            status.Status
	HasReportedIssues bool
	Parcels           []OrderParcelSummary
}

// OrderParcelSummary is one embedded parcel as seen through the summary.
type OrderParcelSummary struct {
	ID                   kernel.UUID
	Status               status.Status
	TrackingNumber       string
	Weight               *float64
	DeclaredValue        *float64
	PhotoURLs            []string
	InternalTrackingCode string
}
