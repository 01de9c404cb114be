package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/planner"
	httpHandler "github.com/fleetops/dispatch/services/planner/handler/http"
)

// Handler combines all handlers for the planner service
type Handler struct {
	plannerHTTP *httpHandler.PlannerHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(plannerUC planner.PlannerUC, cfg *models.Config) *Handler {
	return &Handler{
		plannerHTTP: httpHandler.NewPlannerHandler(plannerUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the planner service
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKeyMW *middleware.APIKeyMiddleware) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	v1.POST("/plan", h.plannerHTTP.PlanTrip)
	v1.GET("/routes", h.plannerHTTP.ListRoutes)

	// Internal routes for operational tooling (API key required)
	internal := e.Group("/internal", apiKeyMW.Handler())
	internal.POST("/fleet/seed", h.plannerHTTP.SeedFleet)
}
