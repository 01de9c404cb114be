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
)

// PlannerHandler handles HTTP requests for dispatch planning
type PlannerHandler struct {
	plannerUC planner.PlannerUC
}

// NewPlannerHandler creates a new planner HTTP handler
func NewPlannerHandler(plannerUC planner.PlannerUC) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
	}
}

// PlanTrip ranks drivers and vehicles for a route and derives fuel estimates
func (h *PlannerHandler) PlanTrip(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Planner.PlanTrip")

	var req models.PlanRequest
	if err := c.Bind(&req); err != nil {
		middleware.NoticeError(c, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.RouteID == "" {
		return utils.BadRequestResponse(c, "Route ID is required")
	}

	accountID := middleware.AccountID(c)
	middleware.AddAttribute(c, "route.id", req.RouteID)

	plan, err := h.plannerUC.PlanTrip(c.Request().Context(), accountID, req)
	if err != nil {
		logger.Error("Failed to build dispatch plan",
			logger.String("account_id", accountID),
			logger.String("route_id", req.RouteID),
			logger.Err(err))
		middleware.NoticeError(c, err)
		if errors.Is(err, planner.ErrRouteNotFound) {
			return utils.NotFoundResponse(c, "Route not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to build dispatch plan")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispatch plan ready", plan)
}

// ListRoutes returns the route catalog
func (h *PlannerHandler) ListRoutes(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Planner.ListRoutes")

	routes, err := h.plannerUC.Routes(c.Request().Context())
	if err != nil {
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "Failed to load routes")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", routes)
}

// SeedFleet repopulates the fleet pool with the reference candidates
func (h *PlannerHandler) SeedFleet(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Planner.SeedFleet")

	if err := h.plannerUC.SeedFleet(c.Request().Context()); err != nil {
		logger.Error("Failed to seed fleet pool", logger.Err(err))
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "Failed to seed fleet pool")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fleet pool seeded", nil)
}
