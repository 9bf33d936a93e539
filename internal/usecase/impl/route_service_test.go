package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"routehub/internal/domain/entity"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/domain/repository"
	"routehub/internal/domain/service"
	mockRepo "routehub/internal/mocks/repository"
	mockSvc "routehub/internal/mocks/service"
	"routehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRouteService(t *testing.T) (
	usecase.RouteUsecase,
	*mockRepo.MockRouteRepository,
	*mockSvc.MockRouteMetricsService,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockAuthClient,
) {
	routeRepo := mockRepo.NewMockRouteRepository(t)
	metricsSvc := mockSvc.NewMockRouteMetricsService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	authClient := mockSvc.NewMockAuthClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	enrichment := NewEnrichmentService(logger, authClient)
	routeSvc := NewRouteService(logger, routeRepo, metricsSvc, publisher, enrichment)

	return routeSvc, routeRepo, metricsSvc, publisher, authClient
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testRoute(creatorID string) *entity.Route {
	return &entity.Route{
		ID:         uuid.New(),
		CreatorID:  creatorID,
		Name:       "Riverside Loop",
		DistanceKm: floatPtr(5.0),
		EstTimeMin: intPtr(60),
		Score:      70,
		Geometry: orb.LineString{
			{121.5654, 25.0330},
			{121.5700, 25.0400},
		},
	}
}

func TestCreateRoute_Success_MetricsOverrideSuppliedValues(t *testing.T) {
	routeSvc, routeRepo, metricsSvc, _, _ := createTestRouteService(t)
	ctx := context.Background()

	geometry := orb.LineString{{121.5654, 25.0330}, {121.5700, 25.0400}}

	metricsSvc.EXPECT().
		CalculateRouteMetrics(ctx, geometry).
		Return(&service.RouteMetrics{DistanceKm: 5.0, EstTimeMin: 60}, nil)

	routeRepo.EXPECT().
		CreateRoute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, route *entity.Route) error {
			route.ID = uuid.New()

			return nil
		})

	route, err := routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{
		Name:       "Riverside Loop",
		DistanceKm: floatPtr(999),
		EstTimeMin: intPtr(999),
		Geometry:   geometry,
	}, "creator-1")

	require.NoError(t, err)
	require.NotNil(t, route.DistanceKm)
	require.NotNil(t, route.EstTimeMin)
	assert.InDelta(t, 5.0, *route.DistanceKm, 1e-9)
	assert.Equal(t, 60, *route.EstTimeMin)
	// 5 km: 50 base points plus the 5 km bonus tier.
	assert.Equal(t, 70, route.Score)
	assert.Equal(t, 0, route.CompletedCount)
	assert.Equal(t, "creator-1", route.CreatorID)
}

func TestCreateRoute_WithoutGeometryKeepsSuppliedValues(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(nil)

	route, err := routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{
		Name:       "Manual Route",
		DistanceKm: floatPtr(10),
		EstTimeMin: intPtr(120),
	}, "creator-1")

	require.NoError(t, err)
	assert.InDelta(t, 10.0, *route.DistanceKm, 1e-9)
	assert.Equal(t, 170, route.Score)
}

func TestCreateRoute_NegativeDistanceFailsBeforeRepository(t *testing.T) {
	routeSvc, _, _, _, _ := createTestRouteService(t)

	_, err := routeSvc.CreateRoute(context.Background(), &usecase.CreateRouteInput{
		Name:       "Bad Route",
		DistanceKm: floatPtr(-1),
	}, "creator-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCreateRoute_ValidationRules(t *testing.T) {
	routeSvc, _, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	_, err := routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: "x"}, "")
	assert.ErrorIs(t, err, domainerrors.ErrCreatorRequired)

	_, err = routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: "   "}, "creator-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	longName := make([]byte, entity.MaxRouteNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}
	_, err = routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: string(longName)}, "creator-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: "x", EstTimeMin: intPtr(-5)}, "creator-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: "x", AvgRating: floatPtr(5.5)}, "creator-1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCreateRoute_RepositoryFailureWrapped(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := routeSvc.CreateRoute(ctx, &usecase.CreateRouteInput{Name: "Riverside Loop"}, "creator-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetRouteByID_NotFound(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()
	id := uuid.New()

	routeRepo.EXPECT().FindRouteByID(ctx, id).Return(nil, repository.ErrRouteNotFound)

	_, err := routeSvc.GetRouteByID(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func TestGetRoutes_WithoutEnrichment(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	routeRepo.EXPECT().FindAllRoutes(ctx).Return([]*entity.Route{testRoute("creator-1")}, nil)

	routes, err := routeSvc.GetRoutes(ctx, false)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Nil(t, routes[0].Creator)
}

func TestGetRoutes_WithEnrichment(t *testing.T) {
	routeSvc, routeRepo, _, _, authClient := createTestRouteService(t)
	ctx := context.Background()

	routeRepo.EXPECT().FindAllRoutes(ctx).Return([]*entity.Route{testRoute("creator-1")}, nil)
	authClient.EXPECT().GetUserByID(ctx, "creator-1").
		Return(&entity.Creator{ID: "creator-1", Email: "c@example.com", Alias: "c"}, nil)

	routes, err := routeSvc.GetRoutes(ctx, true)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.NotNil(t, routes[0].Creator)
	assert.Equal(t, "creator-1", routes[0].Creator.ID)
}

func TestGetRoutesByRating_InvalidRange(t *testing.T) {
	routeSvc, _, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	_, err := routeSvc.GetRoutesByRating(ctx, -1, 3)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = routeSvc.GetRoutesByRating(ctx, 0, 6)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = routeSvc.GetRoutesByRating(ctx, 4, 2)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFindNearbyRoutes_Validation(t *testing.T) {
	routeSvc, _, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input usecase.FindNearbyInput
	}{
		{"latitude out of range", usecase.FindNearbyInput{Latitude: 91, Longitude: 0, RadiusM: 100}},
		{"longitude out of range", usecase.FindNearbyInput{Latitude: 0, Longitude: 181, RadiusM: 100}},
		{"zero radius", usecase.FindNearbyInput{Latitude: 25, Longitude: 121, RadiusM: 0}},
		{"radius above cap", usecase.FindNearbyInput{Latitude: 25, Longitude: 121, RadiusM: 100_001}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := routeSvc.FindNearbyRoutes(ctx, &tc.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestFindNearbyRoutes_DelegatesToRepository(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	expected := []*entity.Route{testRoute("creator-1"), testRoute("creator-2")}
	routeRepo.EXPECT().FindNearbyRoutes(ctx, 25.0330, 121.5654, 5000.0).Return(expected, nil)

	routes, err := routeSvc.FindNearbyRoutes(ctx, &usecase.FindNearbyInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
		RadiusM:   5000,
	})

	require.NoError(t, err)
	// The repository is the ordering authority; results pass through untouched.
	assert.Equal(t, expected, routes)
}

func TestUpdateRoute_ForbiddenForNonCreator(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)

	_, err := routeSvc.UpdateRoute(ctx, route.ID, &usecase.UpdateRouteInput{
		Name: strPtr("New Name"),
	}, "someone-else")

	assert.ErrorIs(t, err, domainerrors.ErrRouteOwnership)
}

func TestUpdateRoute_Success(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	updated := *route
	updated.Name = "New Name"

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	routeRepo.EXPECT().
		UpdateRoute(ctx, route.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, data *repository.UpdateRouteData) (*entity.Route, error) {
			require.NotNil(t, data.Name)
			assert.Equal(t, "New Name", *data.Name)

			return &updated, nil
		})

	result, err := routeSvc.UpdateRoute(ctx, route.ID, &usecase.UpdateRouteInput{
		Name: strPtr("New Name"),
	}, "creator-1")

	require.NoError(t, err)
	assert.Equal(t, "New Name", result.Name)
	assert.Equal(t, "creator-1", result.CreatorID)
}

func TestUpdateRoute_RevalidatesNumericFields(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)

	_, err := routeSvc.UpdateRoute(ctx, route.ID, &usecase.UpdateRouteInput{
		DistanceKm: floatPtr(-2),
	}, "creator-1")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeleteRoute_ForbiddenForNonCreator(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)

	err := routeSvc.DeleteRoute(ctx, route.ID, "someone-else")

	assert.ErrorIs(t, err, domainerrors.ErrRouteOwnership)
}

func TestDeleteRoute_Success(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	routeRepo.EXPECT().DeleteRoute(ctx, route.ID).Return(nil)

	require.NoError(t, routeSvc.DeleteRoute(ctx, route.ID, "creator-1"))
}

func TestCompleteRoute_PublishesStoredScore(t *testing.T) {
	routeSvc, routeRepo, _, publisher, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	route.Score = 170

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	routeRepo.EXPECT().IncrementCompletedCount(ctx, route.ID).Return(4, nil)

	var published *service.RouteCompletedEvent
	publisher.EXPECT().
		Publish(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.RouteCompletedEvent) error {
			published = event

			return nil
		})

	event, err := routeSvc.CompleteRoute(ctx, route.ID, "user-1", &usecase.CompleteRouteInput{
		ActualTimeMin: intPtr(58),
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventTypeRouteCompleted, event.EventType)
	// The event carries the route's stored score, never a client value.
	assert.Equal(t, 170, event.Score)
	assert.Equal(t, 4, event.CompletedCount)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, route.CreatorID, event.CreatorID)
	assert.True(t, event.Completed)
	require.NotNil(t, event.ActualTimeMin)
	assert.Equal(t, 58, *event.ActualTimeMin)
	assert.NotEmpty(t, event.Timestamp)
}

func TestCompleteRoute_PublishFailureSurfacesAfterIncrement(t *testing.T) {
	routeSvc, routeRepo, _, publisher, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	routeRepo.EXPECT().IncrementCompletedCount(ctx, route.ID).Return(1, nil)
	publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := routeSvc.CompleteRoute(ctx, route.ID, "user-1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)
}

func TestCompleteRoute_Validation(t *testing.T) {
	routeSvc, _, _, _, _ := createTestRouteService(t)
	ctx := context.Background()

	_, err := routeSvc.CompleteRoute(ctx, uuid.Nil, "user-1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = routeSvc.CompleteRoute(ctx, uuid.New(), "  ", nil)
	assert.ErrorIs(t, err, domainerrors.ErrUserRequired)
}

func TestCompleteRoute_NotFound(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()
	id := uuid.New()

	routeRepo.EXPECT().FindRouteByID(ctx, id).Return(nil, repository.ErrRouteNotFound)

	_, err := routeSvc.CompleteRoute(ctx, id, "user-1", nil)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func TestGetDirectionsToRouteStart_Success(t *testing.T) {
	routeSvc, routeRepo, metricsSvc, _, _ := createTestRouteService(t)
	ctx := context.Background()

	route := testRoute("creator-1")
	path := orb.LineString{{121.5600, 25.0300}, {121.5654, 25.0330}}

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	metricsSvc.EXPECT().
		DirectionsToStart(ctx, 25.0300, 121.5600, route.Geometry).
		Return(path, nil)

	result, err := routeSvc.GetDirectionsToRouteStart(ctx, route.ID, 25.0300, 121.5600)

	require.NoError(t, err)
	assert.Equal(t, path, result)
}

func TestGetDirectionsToRouteStart_NotFoundPropagates(t *testing.T) {
	routeSvc, routeRepo, _, _, _ := createTestRouteService(t)
	ctx := context.Background()
	id := uuid.New()

	routeRepo.EXPECT().FindRouteByID(ctx, id).Return(nil, repository.ErrRouteNotFound)

	_, err := routeSvc.GetDirectionsToRouteStart(ctx, id, 25.0300, 121.5600)

	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
}

func strPtr(s string) *string { return &s }
