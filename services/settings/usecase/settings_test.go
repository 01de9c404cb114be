package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings"
	"github.com/fleetops/dispatch/services/settings/mocks"
	"github.com/fleetops/dispatch/services/settings/usecase"
)

func testConfig() *models.Config {
	return &models.Config{
		Fuel: models.FuelConfig{
			PricePerLitre: 1.2,
			ExchangeRate:  83,
			Currency:      "INR",
		},
	}
}

func TestGetSettings_ReturnsStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	stored := &models.DispatchSettings{AccountID: "acct-1", MaxDrivingHours: 8, Currency: "USD"}
	mockRepo.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(stored, nil)

	uc := usecase.NewSettingsUC(testConfig(), mockRepo)

	s, err := uc.GetSettings(context.Background(), "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, stored, s)
}

func TestGetSettings_DefaultsWhenUnsaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	mockRepo.EXPECT().GetSettings(gomock.Any(), "acct-2").Return(nil, settings.ErrSettingsNotFound)

	uc := usecase.NewSettingsUC(testConfig(), mockRepo)

	s, err := uc.GetSettings(context.Background(), "acct-2")
	assert.NoError(t, err)
	assert.Equal(t, "acct-2", s.AccountID)
	assert.Equal(t, 9.0, s.MaxDrivingHours)
	assert.Equal(t, 1.2, s.FuelPricePerLitre)
	assert.Equal(t, 83.0, s.ExchangeRate)
	assert.Equal(t, "INR", s.Currency)
	assert.Equal(t, "Fastest", s.DefaultRoutePreference)
}

func TestGetSettings_RepoErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	mockRepo.EXPECT().GetSettings(gomock.Any(), "acct-1").Return(nil, assert.AnError)

	uc := usecase.NewSettingsUC(testConfig(), mockRepo)

	_, err := uc.GetSettings(context.Background(), "acct-1")
	assert.Error(t, err)
}

func TestUpdateSettings_PersistsWithAccountScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSettingsRepo(ctrl)
	mockRepo.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewSettingsUC(testConfig(), mockRepo)

	s, err := uc.UpdateSettings(context.Background(), "acct-1", &models.DispatchSettings{
		MaxDrivingHours:   8,
		FuelPricePerLitre: 1.5,
		ExchangeRate:      80,
	})
	assert.NoError(t, err)

	// Account scope comes from the caller, currency falls back to config
	assert.Equal(t, "acct-1", s.AccountID)
	assert.Equal(t, "INR", s.Currency)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestUpdateSettings_RejectsInvalidValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewSettingsUC(testConfig(), mocks.NewMockSettingsRepo(ctrl))

	tests := []struct {
		name string
		in   models.DispatchSettings
	}{
		{"zero max driving hours", models.DispatchSettings{MaxDrivingHours: 0}},
		{"negative fuel price", models.DispatchSettings{MaxDrivingHours: 8, FuelPricePerLitre: -1}},
		{"negative exchange rate", models.DispatchSettings{MaxDrivingHours: 8, ExchangeRate: -5}},
		{"negative state price", models.DispatchSettings{MaxDrivingHours: 8, FuelPricesByState: map[string]float64{"Delhi": -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpdateSettings(context.Background(), "acct-1", &tt.in)
			assert.Error(t, err)
		})
	}
}
