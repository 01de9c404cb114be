package settings

import (
	"context"
	"errors"

	"github.com/fleetops/dispatch/internal/pkg/models"
)

// ErrSettingsNotFound indicates the account has no stored settings row
var ErrSettingsNotFound = errors.New("settings not found")

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/dispatch/services/settings SettingsRepo

// SettingsRepo defines the settings data access operations
type SettingsRepo interface {
	GetSettings(ctx context.Context, accountID string) (*models.DispatchSettings, error)
	UpsertSettings(ctx context.Context, settings *models.DispatchSettings) error
}
