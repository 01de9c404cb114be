package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
	"github.com/fleetops/dispatch/services/planner"
	"github.com/fleetops/dispatch/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trip HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// ConfirmTrip creates a Scheduled trip from the operator's selection
func (h *TripsHandler) ConfirmTrip(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Trips.ConfirmTrip")

	var req trips.ConfirmTripRequest
	if err := c.Bind(&req); err != nil {
		middleware.NoticeError(c, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.RouteID == "" {
		return utils.BadRequestResponse(c, "Route ID is required")
	}
	if req.Driver.ID == "" || req.Vehicle.ID == "" {
		return utils.BadRequestResponse(c, "Driver and vehicle selections are required")
	}

	accountID := middleware.AccountID(c)
	role := middleware.Role(c)

	trip, err := h.tripUC.ConfirmTrip(c.Request().Context(), accountID, role, req)
	if err != nil {
		return h.tripError(c, err, "Failed to confirm trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip confirmed", trip)
}

// ListTrips returns the account's trips, optionally filtered by status
func (h *TripsHandler) ListTrips(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Trips.ListTrips")

	filter := trips.TripFilter{
		Status: models.TripStatus(c.QueryParam("status")),
	}

	result, err := h.tripUC.ListTrips(c.Request().Context(), middleware.AccountID(c), filter)
	if err != nil {
		return h.tripError(c, err, "Failed to list trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

// GetTrip returns a single trip
func (h *TripsHandler) GetTrip(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Trips.GetTrip")

	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), middleware.AccountID(c), tripID)
	if err != nil {
		return h.tripError(c, err, "Failed to get trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// StartTrip moves a Scheduled trip to InProgress
func (h *TripsHandler) StartTrip(c echo.Context) error {
	return h.transition(c, "Trips.StartTrip", models.TripEventStart, "Trip started")
}

// CompleteTrip moves an InProgress trip to Completed
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	return h.transition(c, "Trips.CompleteTrip", models.TripEventComplete, "Trip completed")
}

// CancelTrip cancels a trip that has not finished yet
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	return h.transition(c, "Trips.CancelTrip", models.TripEventCancel, "Trip cancelled")
}

func (h *TripsHandler) transition(c echo.Context, txnName string, event models.TripEvent, successMessage string) error {
	middleware.SetTransactionName(c.Request().Context(), txnName)

	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	accountID := middleware.AccountID(c)
	role := middleware.Role(c)
	middleware.AddAttribute(c, "trip.id", tripID)

	trip, err := h.tripUC.TransitionTrip(c.Request().Context(), accountID, role, tripID, event)
	if err != nil {
		return h.tripError(c, err, "Failed to transition trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, successMessage, trip)
}

// tripError maps domain errors onto HTTP status codes. Permission failures
// and illegal transitions stay distinguishable for the dashboard.
func (h *TripsHandler) tripError(c echo.Context, err error, logMessage string) error {
	middleware.NoticeError(c, err)

	switch {
	case errors.Is(err, trips.ErrPermissionDenied):
		return utils.ForbiddenResponse(c, "Role is not allowed to modify trips")
	case errors.Is(err, trips.ErrInvalidTransition):
		return utils.ConflictResponse(c, "Transition is not allowed from the current status")
	case errors.Is(err, trips.ErrTripNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, planner.ErrRouteNotFound):
		return utils.NotFoundResponse(c, "Route not found")
	default:
		logger.Error(logMessage, logger.Err(err))
		return utils.InternalServerErrorResponse(c, logMessage)
	}
}
