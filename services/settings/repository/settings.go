package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings"
)

// SettingsRepo is the Postgres-backed settings store
type SettingsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(cfg *models.Config, db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetSettings retrieves the account's settings row
func (r *SettingsRepo) GetSettings(ctx context.Context, accountID string) (*models.DispatchSettings, error) {
	query := `
		SELECT account_id, max_driving_hours, fuel_price_per_litre, fuel_prices_by_state,
		       exchange_rate, currency, default_route_preference, updated_at
		FROM dispatch_settings WHERE account_id = $1
	`

	s := &models.DispatchSettings{}
	var statePrices []byte

	err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&s.AccountID,
		&s.MaxDrivingHours,
		&s.FuelPricePerLitre,
		&statePrices,
		&s.ExchangeRate,
		&s.Currency,
		&s.DefaultRoutePreference,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if len(statePrices) > 0 {
		if err := json.Unmarshal(statePrices, &s.FuelPricesByState); err != nil {
			return nil, fmt.Errorf("failed to decode state fuel prices: %w", err)
		}
	}

	return s, nil
}

// UpsertSettings inserts or replaces the account's settings row
func (r *SettingsRepo) UpsertSettings(ctx context.Context, s *models.DispatchSettings) error {
	statePrices, err := json.Marshal(s.FuelPricesByState)
	if err != nil {
		return fmt.Errorf("failed to encode state fuel prices: %w", err)
	}

	query := `
		INSERT INTO dispatch_settings (
			account_id, max_driving_hours, fuel_price_per_litre, fuel_prices_by_state,
			exchange_rate, currency, default_route_preference, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id) DO UPDATE SET
			max_driving_hours = EXCLUDED.max_driving_hours,
			fuel_price_per_litre = EXCLUDED.fuel_price_per_litre,
			fuel_prices_by_state = EXCLUDED.fuel_prices_by_state,
			exchange_rate = EXCLUDED.exchange_rate,
			currency = EXCLUDED.currency,
			default_route_preference = EXCLUDED.default_route_preference,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		s.AccountID,
		s.MaxDrivingHours,
		s.FuelPricePerLitre,
		statePrices,
		s.ExchangeRate,
		s.Currency,
		s.DefaultRoutePreference,
		s.UpdatedAt,
	)
	return err
}
