package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fleetops/dispatch/internal/pkg/models"
	"github.com/fleetops/dispatch/services/settings/mocks"
)

func newContext(t *testing.T, method string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	e := echo.New()
	request := httptest.NewRequest(method, "/v1/settings", &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("account_id", "acct-1")
	c.Set("user_role", models.RoleDispatcher)

	return c, recorder
}

func TestGetSettings_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettingsUC := mocks.NewMockSettingsUC(ctrl)
	handler := NewSettingsHandler(mockSettingsUC)

	mockSettingsUC.EXPECT().
		GetSettings(gomock.Any(), "acct-1").
		Return(&models.DispatchSettings{AccountID: "acct-1", MaxDrivingHours: 9}, nil)

	c, recorder := newContext(t, http.MethodGet, nil)

	assert.NoError(t, handler.GetSettings(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateSettings_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettingsUC := mocks.NewMockSettingsUC(ctrl)
	handler := NewSettingsHandler(mockSettingsUC)

	in := models.DispatchSettings{MaxDrivingHours: 8, FuelPricePerLitre: 1.4}

	mockSettingsUC.EXPECT().
		UpdateSettings(gomock.Any(), "acct-1", gomock.Any()).
		Return(&in, nil)

	c, recorder := newContext(t, http.MethodPut, in)

	assert.NoError(t, handler.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateSettings_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettingsUC := mocks.NewMockSettingsUC(ctrl)
	handler := NewSettingsHandler(mockSettingsUC)

	mockSettingsUC.EXPECT().
		UpdateSettings(gomock.Any(), "acct-1", gomock.Any()).
		Return(nil, assert.AnError)

	c, recorder := newContext(t, http.MethodPut, models.DispatchSettings{})

	assert.NoError(t, handler.UpdateSettings(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
