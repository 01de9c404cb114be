package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings"
	"github.com/fleetops/dispatch/services/settings/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestGetSettings_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewSettingsRepository(&models.Config{}, db)

	rows := sqlmock.NewRows([]string{
		"account_id", "max_driving_hours", "fuel_price_per_litre", "fuel_prices_by_state",
		"exchange_rate", "currency", "default_route_preference", "updated_at",
	}).AddRow("acct-1", 9.0, 1.2, []byte(`{"Mumbai":1.35}`), 83.0, "INR", "Fastest", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM dispatch_settings WHERE account_id = $1")).
		WithArgs("acct-1").
		WillReturnRows(rows)

	s, err := repo.GetSettings(context.Background(), "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, "acct-1", s.AccountID)
	assert.Equal(t, 1.35, s.FuelPricesByState["Mumbai"])
	assert.Equal(t, "INR", s.Currency)
}

func TestGetSettings_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewSettingsRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM dispatch_settings")).
		WithArgs("acct-2").
		WillReturnRows(sqlmock.NewRows([]string{"account_id"}))

	_, err := repo.GetSettings(context.Background(), "acct-2")
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}

func TestUpsertSettings_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewSettingsRepository(&models.Config{}, db)

	s := &models.DispatchSettings{
		AccountID:              "acct-1",
		MaxDrivingHours:        8,
		FuelPricePerLitre:      1.4,
		FuelPricesByState:      map[string]float64{"Delhi": 1.5},
		ExchangeRate:           83,
		Currency:               "INR",
		DefaultRoutePreference: "Economical",
		UpdatedAt:              time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dispatch_settings")).
		WithArgs(s.AccountID, s.MaxDrivingHours, s.FuelPricePerLitre, sqlmock.AnyArg(),
			s.ExchangeRate, s.Currency, s.DefaultRoutePreference, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertSettings(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
