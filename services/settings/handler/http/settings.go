package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/internal/utils"
	"github.com/fleetops/dispatch/services/settings"
)

// SettingsHandler handles HTTP requests for dispatch settings
type SettingsHandler struct {
	settingsUC settings.SettingsUC
}

// NewSettingsHandler creates a new settings HTTP handler
func NewSettingsHandler(settingsUC settings.SettingsUC) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
	}
}

// GetSettings returns the account's dispatch settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Settings.GetSettings")

	accountID := middleware.AccountID(c)

	s, err := h.settingsUC.GetSettings(c.Request().Context(), accountID)
	if err != nil {
		logger.Error("Failed to load settings",
			logger.String("account_id", accountID),
			logger.Err(err))
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "Failed to load settings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settings retrieved successfully", s)
}

// UpdateSettings replaces the account's dispatch settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	middleware.SetTransactionName(c.Request().Context(), "Settings.UpdateSettings")

	var req models.DispatchSettings
	if err := c.Bind(&req); err != nil {
		middleware.NoticeError(c, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	accountID := middleware.AccountID(c)

	s, err := h.settingsUC.UpdateSettings(c.Request().Context(), accountID, &req)
	if err != nil {
		middleware.NoticeError(c, err)
		return utils.BadRequestResponse(c, "Failed to update settings: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", s)
}
