package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routehub/internal/delivery/http/middleware"
	"routehub/internal/delivery/http/validator"
	"routehub/internal/domain/entity"
	"routehub/internal/domain/repository"
	mockRepo "routehub/internal/mocks/repository"
	mockSvc "routehub/internal/mocks/service"
	"routehub/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouteHandler(t *testing.T) (*RouteHandler, *mockRepo.MockRouteRepository) {
	routeRepo := mockRepo.NewMockRouteRepository(t)
	metricsSvc := mockSvc.NewMockRouteMetricsService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	authClient := mockSvc.NewMockAuthClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	enrichment := impl.NewEnrichmentService(logger, authClient)
	routeUC := impl.NewRouteService(logger, routeRepo, metricsSvc, publisher, enrichment)

	handler := NewRouteHandler(RouteHandlerParams{
		RouteUC: routeUC,
		Logger:  logger,
	})

	return handler, routeRepo
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRouteHandler_CreateRoute(t *testing.T) {
	handler, routeRepo := newTestRouteHandler(t)

	routeRepo.EXPECT().
		CreateRoute(mock.Anything, mock.AnythingOfType("*entity.Route")).
		RunAndReturn(func(_ context.Context, route *entity.Route) error {
			route.ID = uuid.New()
			return nil
		}).Once()

	c, rec := newTestContext(http.MethodPost, "/routes",
		`{"name":"Riverside Loop","distance_km":5.5,"est_time_min":66}`)
	c.Set(middleware.ContextKeyUserID, "creator-1")

	require.NoError(t, handler.CreateRoute(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Riverside Loop")
	assert.Contains(t, rec.Body.String(), `"creator_id":"creator-1"`)
}

func TestRouteHandler_CreateRoute_MissingIdentity(t *testing.T) {
	handler, _ := newTestRouteHandler(t)

	c, rec := newTestContext(http.MethodPost, "/routes", `{"name":"Riverside Loop"}`)

	require.NoError(t, handler.CreateRoute(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestRouteHandler_CreateRoute_RejectsPointGeometry(t *testing.T) {
	handler, _ := newTestRouteHandler(t)

	c, rec := newTestContext(http.MethodPost, "/routes",
		`{"name":"Riverside Loop","geometry":{"type":"Point","coordinates":[121.5,25.0]}}`)
	c.Set(middleware.ContextKeyUserID, "creator-1")

	require.NoError(t, handler.CreateRoute(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_GEOMETRY")
}

func TestRouteHandler_GetRouteByID_InvalidID(t *testing.T) {
	handler, _ := newTestRouteHandler(t)

	c, rec := newTestContext(http.MethodGet, "/routes/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetRouteByID(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestRouteHandler_GetRouteByID_NotFound(t *testing.T) {
	handler, routeRepo := newTestRouteHandler(t)

	routeID := uuid.New()
	routeRepo.EXPECT().
		FindRouteByID(mock.Anything, routeID).
		Return(nil, repository.ErrRouteNotFound).Once()

	c, rec := newTestContext(http.MethodGet, "/routes/"+routeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(routeID.String())

	require.NoError(t, handler.GetRouteByID(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROUTE_NOT_FOUND")
}

func TestRouteHandler_GetNearbyRoutes_RadiusRequired(t *testing.T) {
	handler, _ := newTestRouteHandler(t)

	c, rec := newTestContext(http.MethodGet, "/routes/nearby?lat=25.03&lng=121.56", "")

	require.NoError(t, handler.GetNearbyRoutes(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRouteHandler_GetNearbyRoutes(t *testing.T) {
	handler, routeRepo := newTestRouteHandler(t)

	routeRepo.EXPECT().
		FindNearbyRoutes(mock.Anything, 25.03, 121.56, 500.0).
		Return([]*entity.Route{
			{ID: uuid.New(), CreatorID: "creator-1", Name: "Riverside Loop"},
		}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/routes/nearby?lat=25.03&lng=121.56&radius_m=500", "")

	require.NoError(t, handler.GetNearbyRoutes(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Riverside Loop")
}

func TestRouteHandler_GetRoutes_InvalidEnrich(t *testing.T) {
	handler, _ := newTestRouteHandler(t)

	c, rec := newTestContext(http.MethodGet, "/routes?enrich=banana", "")

	require.NoError(t, handler.GetRoutes(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteHandler_DeleteRoute_Forbidden(t *testing.T) {
	handler, routeRepo := newTestRouteHandler(t)

	routeID := uuid.New()
	routeRepo.EXPECT().
		FindRouteByID(mock.Anything, routeID).
		Return(&entity.Route{ID: routeID, CreatorID: "creator-1", Name: "Riverside Loop"}, nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/routes/"+routeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(routeID.String())
	c.Set(middleware.ContextKeyUserID, "someone-else")

	require.NoError(t, handler.DeleteRoute(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthHandler_ReportsBrokerState(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().IsHealthy().Return(false).Once()

	handler := NewHealthHandler(HealthHandlerParams{Publisher: publisher})

	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"broker":"down"`)
}
