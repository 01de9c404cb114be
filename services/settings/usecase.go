package settings

import (
	"context"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/dispatch/services/settings SettingsUC

// SettingsUC defines the settings service operations
type SettingsUC interface {
	GetSettings(ctx context.Context, accountID string) (*models.DispatchSettings, error)
	UpdateSettings(ctx context.Context, accountID string, settings *models.DispatchSettings) (*models.DispatchSettings, error)
}
