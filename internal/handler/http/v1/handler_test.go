package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/parade_tracking_system/internal/config"
	"github.com/shenikar/parade_tracking_system/internal/models"
	"github.com/shenikar/parade_tracking_system/internal/route"
	"github.com/shenikar/parade_tracking_system/internal/service"
	"github.com/shenikar/parade_tracking_system/internal/service/mocks"
	"github.com/shenikar/parade_tracking_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}
	fixTime    = time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockTrackingService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTrackingService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 {
	return &v
}

func activeBoat(id string) models.BoatState {
	state := *models.NewBoatState(id, "Golden Swan", fixTime)
	state.Status = models.StatusActive
	state.CurrentPosition = &models.MappedPosition{
		Latitude:             52.3676,
		Longitude:            4.9041,
		Timestamp:            fixTime,
		RouteDistanceMeters:  120,
		RouteProgressPercent: 12,
		EstimatedSpeed:       floatPtr(2.5),
		EstimatedHeading:     90,
	}
	state.LastUpdateAt = fixTime
	return state
}

func fixBody(t *testing.T, req FixRequest) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestIngestFix_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{
		BoatID:    "boat-1",
		Latitude:  floatPtr(52.3676),
		Longitude: floatPtr(4.9041),
		Timestamp: fixTime,
		Speed:     floatPtr(3),
	}

	mockService.EXPECT().
		IngestFix(gomock.Any(), "boat-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fix models.PositionFix) (*service.IngestResult, error) {
			assert.Equal(t, 52.3676, fix.Latitude)
			assert.True(t, fix.Timestamp.Equal(fixTime))
			require.NotNil(t, fix.RawSpeed)
			assert.Equal(t, 3.0, *fix.RawSpeed)
			assert.Nil(t, fix.RawHeading)
			return &service.IngestResult{Boat: activeBoat("boat-1"), OnRoute: true, DeviationMeters: 1.5}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/webhook/fix", fixBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FixResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OnRoute)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 1.5, resp.DeviationMeters)
	require.NotNil(t, resp.Position)
	assert.Equal(t, 12.0, resp.Position.RouteProgressPercent)
}

func TestIngestFix_NotOnRoute(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{BoatID: "boat-1", Latitude: floatPtr(52.4), Longitude: floatPtr(4.95), Timestamp: fixTime}

	mockService.EXPECT().
		IngestFix(gomock.Any(), "boat-1", gomock.Any()).
		Return(&service.IngestResult{OnRoute: false, DeviationMeters: 812}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/webhook/fix", fixBody(t, reqBody))

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp FixResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OnRoute)
	assert.Nil(t, resp.Position)
	assert.Equal(t, "boat-1", resp.BoatID)
}

func TestIngestFix_ZeroCoordinatesAreValid(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{BoatID: "boat-1", Latitude: floatPtr(0), Longitude: floatPtr(0), Timestamp: fixTime}

	mockService.EXPECT().
		IngestFix(gomock.Any(), "boat-1", gomock.Any()).
		Return(&service.IngestResult{OnRoute: false}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/webhook/fix", fixBody(t, reqBody))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestIngestFix_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"boat_id": "boat-1"`},
		{"missing boat id", `{"latitude": 52.1, "longitude": 4.9, "timestamp": "2026-08-01T14:00:00Z"}`},
		{"missing latitude", `{"boat_id": "b", "longitude": 4.9, "timestamp": "2026-08-01T14:00:00Z"}`},
		{"latitude out of range", `{"boat_id": "b", "latitude": 91, "longitude": 4.9, "timestamp": "2026-08-01T14:00:00Z"}`},
		{"missing timestamp", `{"boat_id": "b", "latitude": 52.1, "longitude": 4.9}`},
		{"negative speed", `{"boat_id": "b", "latitude": 52.1, "longitude": 4.9, "timestamp": "2026-08-01T14:00:00Z", "speed": -1}`},
		{"heading out of range", `{"boat_id": "b", "latitude": 52.1, "longitude": 4.9, "timestamp": "2026-08-01T14:00:00Z", "heading": 360}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().IngestFix(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, http.MethodPost, "/api/v1/webhook/fix", bytes.NewBufferString(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestIngestFix_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown boat", fmt.Errorf("service: could not ingest fix: %w", store.ErrNotFound), http.StatusNotFound},
		{"invalid fix", fmt.Errorf("service: %w: timestamp is required", service.ErrInvalidFix), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			reqBody := FixRequest{BoatID: "boat-1", Latitude: floatPtr(52.1), Longitude: floatPtr(4.9), Timestamp: fixTime}
			mockService.EXPECT().IngestFix(gomock.Any(), "boat-1", gomock.Any()).Return(nil, tt.err).Times(1)

			w := makeRequest(router, http.MethodPost, "/api/v1/webhook/fix", fixBody(t, reqBody))

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestProtectedRoutes_RequireAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/boats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/boats", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestListBoats_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListBoats(gomock.Any()).Return([]models.BoatState{activeBoat("boat-1"), activeBoat("boat-2")}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/boats", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []BoatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "boat-2", resp[1].ID)
	assert.True(t, resp[0].Corridor.InCorridor)
}

func TestRegisterBoat(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		RegisterBoat(gomock.Any(), "boat-1", "Golden Swan").
		Return(*models.NewBoatState("boat-1", "Golden Swan", fixTime), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/boats", bytes.NewBufferString(`{"id":"boat-1","name":"Golden Swan"}`), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp BoatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waiting", resp.Status)
	assert.Nil(t, resp.CurrentPosition)
}

func TestRegisterBoat_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().RegisterBoat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/boats", bytes.NewBufferString(`{"name":"Nameless"}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ID' failed on the 'required' tag")
}

func TestRegisterBoat_ServiceRejectsID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		RegisterBoat(gomock.Any(), " ", "").
		Return(models.BoatState{}, fmt.Errorf("service: could not register boat: %w", service.ErrBoatIDRequired))

	w := makeRequest(router, http.MethodPost, "/api/v1/boats", bytes.NewBufferString(`{"id":" "}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "boat id is required")
}

func TestGetBoat(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetBoat(gomock.Any(), "boat-1").Return(activeBoat("boat-1"), nil)
	mockService.EXPECT().GetBoat(gomock.Any(), "ghost").Return(models.BoatState{}, fmt.Errorf("service: %w", store.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/boats/boat-1", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp BoatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Golden Swan", resp.Name)
	require.NotNil(t, resp.CurrentPosition)
	assert.Equal(t, 2.5, *resp.CurrentPosition.EstimatedSpeedMps)

	w = makeRequest(router, http.MethodGet, "/api/v1/boats/ghost", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "boat not found")
}

func TestGetHistory_Limit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	history := []models.MappedPosition{{RouteDistanceMeters: 30}, {RouteDistanceMeters: 20}}
	mockService.EXPECT().History(gomock.Any(), "boat-1", 2).Return(history, nil)
	mockService.EXPECT().History(gomock.Any(), "boat-1", defaultHistoryLimit).Return(history, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/boats/boat-1/history?limit=2", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp []PositionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 30.0, resp[0].RouteDistanceMeters)

	w = makeRequest(router, http.MethodGet, "/api/v1/boats/boat-1/history?limit=abc", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSightings(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sightings := []*models.Sighting{
		{ID: 2, BoatID: "boat-1", OnRoute: false, FixedAt: fixTime},
		{ID: 1, BoatID: "boat-1", OnRoute: true, RouteDistanceMeters: floatPtr(12), FixedAt: fixTime},
	}
	mockService.EXPECT().Sightings(gomock.Any(), "boat-1", 10).Return(sightings, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/boats/boat-1/sightings?limit=10", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SightingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.False(t, resp[0].OnRoute)
	assert.Nil(t, resp[0].RouteDistanceMeters)
}

func TestSetStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	finished := activeBoat("boat-1")
	finished.Status = models.StatusFinished
	mockService.EXPECT().SetStatus(gomock.Any(), "boat-1", models.StatusFinished, "").Return(finished, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/boats/boat-1/status", bytes.NewBufferString(`{"status":"finished"}`), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"finished"`)
}

func TestSetStatus_InvalidTransition(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		SetStatus(gomock.Any(), "boat-1", models.StatusWaiting, "").
		Return(activeBoat("boat-1"), fmt.Errorf("service: %w", models.TransitionError(models.StatusFinished, models.StatusWaiting)))

	w := makeRequest(router, http.MethodPut, "/api/v1/boats/boat-1/status", bytes.NewBufferString(`{"status":"waiting"}`), apiKeyHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status transition")
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/boats/boat-1/status", bytes.NewBufferString(`{"status":"sunk"}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeclareEmergency(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	emergency := activeBoat("boat-1")
	emergency.Status = models.StatusEmergency
	mockService.EXPECT().DeclareEmergency(gomock.Any(), "boat-1", "engine fire").Return(emergency, nil)
	mockService.EXPECT().DeclareEmergency(gomock.Any(), "boat-1", "").Return(emergency, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/boats/boat-1/emergency", bytes.NewBufferString(`{"message":"engine fire"}`), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"emergency"`)

	// без тела
	w = makeRequest(router, http.MethodPost, "/api/v1/boats/boat-1/emergency", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearEmergency(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ClearEmergency(gomock.Any(), "boat-1").Return(activeBoat("boat-1"), nil)
	mockService.EXPECT().
		ClearEmergency(gomock.Any(), "boat-2").
		Return(activeBoat("boat-2"), models.TransitionError(models.StatusActive, models.StatusActive))

	w := makeRequest(router, http.MethodDelete, "/api/v1/boats/boat-1/emergency", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/v1/boats/boat-2/emergency", nil, apiKeyHeader)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResetBoat(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ResetBoat(gomock.Any(), "boat-1").Return(*models.NewBoatState("boat-1", "", fixTime), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/boats/boat-1/reset", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"waiting"`)
}

func TestGetRoute(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Route().Return(service.RouteInfo{
		TotalDistanceMeters: 200,
		ToleranceMeters:     10,
		SoftThresholdMeters: 5,
		Waypoints: []route.Waypoint{
			{Latitude: 52.1, Longitude: 4.1},
			{Latitude: 52.2, Longitude: 4.2, CumulativeDistanceMeters: 200},
		},
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/route", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200.0, resp.TotalDistanceMeters)
	require.Len(t, resp.Waypoints, 2)
	assert.Equal(t, 200.0, resp.Waypoints[1].CumulativeDistanceMeters)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
