package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists orders sitting at a given aggregate status,
// the operational view an agent uses to find work at their station.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status status.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a validated listing query.
func NewGetOrdersByStatusQuery(s status.Status) (GetOrdersByStatusQuery, error) {
	if err := s.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: s,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the aggregate status to filter by.
func (q GetOrdersByStatusQuery) Status() status.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse represents one order in the listing.
type GetOrdersByStatusQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      status.Status
	ParcelCount int
}
