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
	"github.com/fleetops/dispatch/services/planner"
	"github.com/fleetops/dispatch/services/planner/mocks"
)

func newContext(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	e := echo.New()
	request := httptest.NewRequest(method, target, &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.Set("account_id", "acct-1")
	c.Set("user_role", models.RoleDispatcher)

	return c, recorder
}

func TestPlanTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewPlannerHandler(mockPlannerUC)

	req := models.PlanRequest{RouteID: "MUM-PUN", Pickup: models.GeoPoint{Latitude: 18.9696, Longitude: 72.8195}}

	mockPlannerUC.EXPECT().
		PlanTrip(gomock.Any(), "acct-1", gomock.Any()).
		Return(&models.PlanResponse{Route: models.Route{ID: "MUM-PUN"}}, nil)

	c, recorder := newContext(t, http.MethodPost, "/v1/plan", req)

	assert.NoError(t, handler.PlanTrip(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPlanTrip_MissingRouteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPlannerHandler(mocks.NewMockPlannerUC(ctrl))

	c, recorder := newContext(t, http.MethodPost, "/v1/plan", models.PlanRequest{})

	assert.NoError(t, handler.PlanTrip(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPlanTrip_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewPlannerHandler(mockPlannerUC)

	mockPlannerUC.EXPECT().
		PlanTrip(gomock.Any(), "acct-1", gomock.Any()).
		Return(nil, planner.ErrRouteNotFound)

	c, recorder := newContext(t, http.MethodPost, "/v1/plan", models.PlanRequest{RouteID: "NOPE"})

	assert.NoError(t, handler.PlanTrip(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListRoutes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewPlannerHandler(mockPlannerUC)

	mockPlannerUC.EXPECT().
		Routes(gomock.Any()).
		Return([]models.Route{{ID: "MUM-PUN"}, {ID: "DEL-JAI"}}, nil)

	c, recorder := newContext(t, http.MethodGet, "/v1/routes", nil)

	assert.NoError(t, handler.ListRoutes(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSeedFleet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewPlannerHandler(mockPlannerUC)

	mockPlannerUC.EXPECT().SeedFleet(gomock.Any()).Return(nil)

	c, recorder := newContext(t, http.MethodPost, "/internal/fleet/seed", nil)

	assert.NoError(t, handler.SeedFleet(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSeedFleet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlannerUC := mocks.NewMockPlannerUC(ctrl)
	handler := NewPlannerHandler(mockPlannerUC)

	mockPlannerUC.EXPECT().SeedFleet(gomock.Any()).Return(assert.AnError)

	c, recorder := newContext(t, http.MethodPost, "/internal/fleet/seed", nil)

	assert.NoError(t, handler.SeedFleet(c))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
