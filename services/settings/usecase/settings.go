package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings"
)

const defaultMaxDrivingHours = 9.0

type settingsUC struct {
	cfg  *models.Config
	repo settings.SettingsRepo
}

// NewSettingsUC creates a new settings usecase
func NewSettingsUC(cfg *models.Config, repo settings.SettingsRepo) settings.SettingsUC {
	return &settingsUC{
		cfg:  cfg,
		repo: repo,
	}
}

// GetSettings returns the account's stored settings, or service defaults when
// the account never saved any
func (uc *settingsUC) GetSettings(ctx context.Context, accountID string) (*models.DispatchSettings, error) {
	stored, err := uc.repo.GetSettings(ctx, accountID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return uc.defaults(accountID), nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return stored, nil
}

// UpdateSettings validates and persists the account's settings
func (uc *settingsUC) UpdateSettings(ctx context.Context, accountID string, s *models.DispatchSettings) (*models.DispatchSettings, error) {
	if s.MaxDrivingHours <= 0 {
		return nil, fmt.Errorf("max driving hours must be positive")
	}
	if s.FuelPricePerLitre < 0 || s.ExchangeRate < 0 {
		return nil, fmt.Errorf("fuel price and exchange rate must not be negative")
	}
	for state, price := range s.FuelPricesByState {
		if price < 0 {
			return nil, fmt.Errorf("fuel price for %s must not be negative", state)
		}
	}

	s.AccountID = accountID
	if s.Currency == "" {
		s.Currency = uc.cfg.Fuel.Currency
	}
	s.UpdatedAt = time.Now()

	if err := uc.repo.UpsertSettings(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return s, nil
}

func (uc *settingsUC) defaults(accountID string) *models.DispatchSettings {
	return &models.DispatchSettings{
		AccountID:              accountID,
		MaxDrivingHours:        defaultMaxDrivingHours,
		FuelPricePerLitre:      uc.cfg.Fuel.PricePerLitre,
		ExchangeRate:           uc.cfg.Fuel.ExchangeRate,
		Currency:               uc.cfg.Fuel.Currency,
		DefaultRoutePreference: "Fastest",
	}
}
