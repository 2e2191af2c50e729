// Package http exposes the workflow engine over a REST API. The server
// trusts the X-Actor-Id and X-Actor-Role headers; authenticating them is
// the job of whatever sits in front of this service.
package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	removeOrderHandler        commands.RemoveOrderCommandHandler
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler
	flagParcelIssueHandler    commands.FlagParcelIssueCommandHandler

	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler
	getTrackingHistoryHandler    queries.GetTrackingHistoryQueryHandler
	getOrderSummaryHandler       queries.GetOrderSummaryQueryHandler
	getOrdersByStatusHandler     queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	updateParcelStatusHandler commands.UpdateParcelStatusCommandHandler,
	flagParcelIssueHandler commands.FlagParcelIssueCommandHandler,
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		removeOrderHandler:           removeOrderHandler,
		updateParcelStatusHandler:    updateParcelStatusHandler,
		flagParcelIssueHandler:       flagParcelIssueHandler,
		getAllowedTransitionsHandler: getAllowedTransitionsHandler,
		getTrackingHistoryHandler:    getTrackingHistoryHandler,
		getOrderSummaryHandler:       getOrderSummaryHandler,
		getOrdersByStatusHandler:     getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrderSummary)
	api.DELETE("/orders/:id", s.RemoveOrder)

	api.POST("/parcels/:id/status", s.UpdateParcelStatus)
	api.POST("/parcels/:id/issue", s.FlagParcelIssue)
	api.GET("/parcels/:id/transitions", s.GetAllowedTransitions)
	api.GET("/parcels/:id/events", s.GetTrackingHistory)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, _, errResp := actorFromHeaders(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, actorID, req.TrackingNumbers)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels := make([]ParcelResponse, 0, len(created.Snapshots()))
	for _, snap := range created.Snapshots() {
		parcels = append(parcels, snapshotResponse(snap))
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:         created.ID().String(),
		CustomerID: created.CustomerID().String(),
		Status:     created.Status().String(),
		Parcels:    parcels,
	})
}

// GetOrdersByStatus handles GET /api/v1/orders?status=...
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	requested, err := status.FromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStatusQuery(requested)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListingResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderListingResponse{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status.String(),
			ParcelCount: o.ParcelCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/orders/:id.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	parcels := make([]ParcelResponse, 0, len(summary.Parcels))
	for _, p := range summary.Parcels {
		parcels = append(parcels, ParcelResponse{
			ID:                   p.ID.String(),
			Status:               p.Status.String(),
			TrackingNumber:       p.TrackingNumber,
			Weight:               p.Weight,
			DeclaredValue:        p.DeclaredValue,
			PhotoURLs:            p.PhotoURLs,
			InternalTrackingCode: p.InternalTrackingCode,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:                summary.ID.String(),
		CustomerID:        summary.CustomerID.String(),
		Status:            summary.Status.String(),
		HasReportedIssues: summary.HasReportedIssues,
		Parcels:           parcels,
	})
}

// RemoveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	_, actorRole, errResp := actorFromHeaders(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, actorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles POST /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	actorID, actorRole, errResp := actorFromHeaders(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req UpdateParcelStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requested, err := status.FromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, requested, actorID, actorRole,
		req.Location, req.Notes,
		parcel.Patch{
			Weight:               req.Weight,
			DeclaredValue:        req.DeclaredValue,
			PhotoURLs:            req.PhotoURLs,
			InternalTrackingCode: req.InternalTrackingCode,
		},
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelResponse(updated))
}

// FlagParcelIssue handles POST /api/v1/parcels/:id/issue.
func (s *Server) FlagParcelIssue(ctx echo.Context) error {
	actorID, actorRole, errResp := actorFromHeaders(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req FlagParcelIssueRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFlagParcelIssueCommand(
		parcelID, actorID, actorRole, req.Location, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	flagged, err := s.flagParcelIssueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelResponse(flagged))
}

// GetAllowedTransitions handles GET /api/v1/parcels/:id/transitions.
func (s *Server) GetAllowedTransitions(ctx echo.Context) error {
	_, actorRole, errResp := actorFromHeaders(ctx)
	if errResp != nil {
		return ctx.JSON(errResp.Code, errResp)
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	query, err := queries.NewGetAllowedTransitionsQuery(parcelID, actorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	transitions, err := s.getAllowedTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	allowed := make([]string, 0, len(transitions.Allowed))
	for _, a := range transitions.Allowed {
		allowed = append(allowed, a.String())
	}

	return ctx.JSON(http.StatusOK, AllowedTransitionsResponse{
		ParcelID:      transitions.ParcelID.String(),
		CurrentStatus: transitions.CurrentStatus.String(),
		Allowed:       allowed,
	})
}

// GetTrackingHistory handles GET /api/v1/parcels/:id/events.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	query, err := queries.NewGetTrackingHistoryQuery(parcelID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TrackingEventResponse, 0, len(history))
	for _, event := range history {
		response = append(response, TrackingEventResponse{
			ID:        event.ID.String(),
			ParcelID:  event.ParcelID.String(),
			Status:    event.Status.String(),
			Timestamp: event.Timestamp,
			ActorID:   event.ActorID.String(),
			Location:  event.Location,
			Notes:     event.Notes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromHeaders extracts the acting user from the request headers.
func actorFromHeaders(ctx echo.Context) (kernel.UUID, status.Role, *ErrorResponse) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(actorIDHeader))
	if err != nil {
		return kernel.UUID{}, status.RoleUnknown, &ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Missing or invalid " + actorIDHeader + " header",
		}
	}

	actorRole, err := status.RoleFromString(ctx.Request().Header.Get(actorRoleHeader))
	if err != nil {
		return kernel.UUID{}, status.RoleUnknown, &ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Missing or invalid " + actorRoleHeader + " header",
		}
	}

	return actorID, actorRole, nil
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrMalformedOrder):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrAdministratorRequired):
		code = http.StatusForbidden
	default:
		// Partial updates land here too: the caller gets a 500 and the
		// completed steps in the message, the mirror repair sweep fixes the
		// drift.
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parcelResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:                   p.ID().String(),
		OrderID:              p.OrderID().String(),
		Status:               p.Status().String(),
		TrackingNumber:       p.TrackingNumber(),
		Weight:               p.Weight(),
		DeclaredValue:        p.DeclaredValue(),
		PhotoURLs:            p.PhotoURLs(),
		InternalTrackingCode: p.InternalTrackingCode(),
	}
}

func snapshotResponse(snap parcel.Snapshot) ParcelResponse {
	return ParcelResponse{
		ID:                   snap.ID().String(),
		Status:               snap.Status().String(),
		TrackingNumber:       snap.TrackingNumber(),
		Weight:               snap.Weight(),
		DeclaredValue:        snap.DeclaredValue(),
		PhotoURLs:            snap.PhotoURLs(),
		InternalTrackingCode: snap.InternalTrackingCode(),
	}
}
