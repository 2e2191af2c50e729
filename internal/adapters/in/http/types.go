package http

import "time"

// CreateOrderRequest is the body of POST /api/v1/orders: one carrier
// tracking number per line item.
type CreateOrderRequest struct {
	CustomerID      string   `json:"customer_id"`
	TrackingNumbers []string `json:"tracking_numbers"`
}

// UpdateParcelStatusRequest is the body of POST /api/v1/parcels/:id/status.
// The metadata fields are optional and merged alongside the status change.
type UpdateParcelStatusRequest struct {
	Status               string   `json:"status"`
	Location             string   `json:"location,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	DeclaredValue        *float64 `json:"declared_value,omitempty"`
	PhotoURLs            []string `json:"photo_urls,omitempty"`
	InternalTrackingCode *string  `json:"internal_tracking_code,omitempty"`
}

// FlagParcelIssueRequest is the body of POST /api/v1/parcels/:id/issue.
type FlagParcelIssueRequest struct {
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes"`
}

// ParcelResponse represents a parcel in API responses. OrderID is empty
// when the parcel is rendered inside its order.
type ParcelResponse struct {
	ID                   string   `json:"id"`
	OrderID              string   `json:"order_id,omitempty"`
	Status               string   `json:"status"`
	TrackingNumber       string   `json:"tracking_number"`
	Weight               *float64 `json:"weight,omitempty"`
	DeclaredValue        *float64 `json:"declared_value,omitempty"`
	PhotoURLs            []string `json:"photo_urls,omitempty"`
	InternalTrackingCode string   `json:"internal_tracking_code,omitempty"`
}

// OrderResponse represents an order with its embedded parcels.
type OrderResponse struct {
	ID                string           `json:"id"`
	CustomerID        string           `json:"customer_id"`
	Status            string           `json:"status"`
	HasReportedIssues bool             `json:"has_reported_issues"`
	Parcels           []ParcelResponse `json:"parcels"`
}

// OrderListingResponse represents one order in a filtered listing.
type OrderListingResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	ParcelCount int    `json:"parcel_count"`
}

// AllowedTransitionsResponse lists the statuses the acting role may move a
// parcel to.
type AllowedTransitionsResponse struct {
	ParcelID      string   `json:"parcel_id"`
	CurrentStatus string   `json:"current_status"`
	Allowed       []string `json:"allowed"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TrackingEventResponse represents one audit log entry.
type TrackingEventResponse struct {
	ID        string    `json:"id"`
	ParcelID  string    `json:"parcel_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
