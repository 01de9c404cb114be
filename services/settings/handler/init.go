package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings"
	httpHandler "github.com/fleetops/dispatch/services/settings/handler/http"
)

// Handler combines all handlers for the settings service
type Handler struct {
	settingsHTTP *httpHandler.SettingsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(settingsUC settings.SettingsUC, cfg *models.Config) *Handler {
	return &Handler{
		settingsHTTP: httpHandler.NewSettingsHandler(settingsUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the settings service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	v1.GET("/settings", h.settingsHTTP.GetSettings)
	v1.PUT("/settings", h.settingsHTTP.UpdateSettings)
}
