// Package impl contains the concrete implementations of the use-case layer.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"routehub/internal/domain/entity"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/domain/repository"
	"routehub/internal/domain/service"
	"routehub/internal/errors"
	"routehub/internal/score"
	"routehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

const (
	minRating = 0.0
	maxRating = 5.0

	// maxNearbyRadiusM caps proximity searches at 100 km.
	maxNearbyRadiusM = 100_000.0
)

type routeService struct {
	logger     *slog.Logger
	routeRepo  repository.RouteRepository
	metricsSvc service.RouteMetricsService
	publisher  service.EventPublisher
	enrichment usecase.EnrichmentUsecase
}

// NewRouteService creates a new route service instance
func NewRouteService(
	logger *slog.Logger,
	routeRepo repository.RouteRepository,
	metricsSvc service.RouteMetricsService,
	publisher service.EventPublisher,
	enrichment usecase.EnrichmentUsecase,
) usecase.RouteUsecase {
	return &routeService{
		logger:     logger,
		routeRepo:  routeRepo,
		metricsSvc: metricsSvc,
		publisher:  publisher,
		enrichment: enrichment,
	}
}

// CreateRoute validates the input, resolves metrics through the routing
// engine when geometry is present, derives the score, and persists the route.
func (s *routeService) CreateRoute(ctx context.Context, input *usecase.CreateRouteInput, creatorID string) (*entity.Route, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, domainerrors.ErrCreatorRequired
	}
	if err := validateRouteFields(input.Name, true, input.DistanceKm, input.EstTimeMin, input.AvgRating); err != nil {
		return nil, err
	}

	route := &entity.Route{
		CreatorID:  creatorID,
		Name:       input.Name,
		DistanceKm: input.DistanceKm,
		EstTimeMin: input.EstTimeMin,
		Geometry:   input.Geometry,
	}
	if input.AvgRating != nil {
		route.AvgRating = *input.AvgRating
	}

	// Engine metrics override any supplied static values. The client falls
	// back to the local estimate internally, so a reachable failure here
	// means the geometry itself is unusable.
	if route.HasGeometry() {
		metrics, err := s.metricsSvc.CalculateRouteMetrics(ctx, route.Geometry)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeometry.WrapMessage(err.Error())
		}

		route.DistanceKm = &metrics.DistanceKm
		route.EstTimeMin = &metrics.EstTimeMin
	}

	if route.DistanceKm != nil {
		route.Score = score.Calculate(*route.DistanceKm)
	}

	if err := s.routeRepo.CreateRoute(ctx, route); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	s.logger.Info("route created",
		slog.String("routeId", route.ID.String()),
		slog.String("creatorId", creatorID),
		slog.Int("score", route.Score),
	)

	return route, nil
}

// GetRoutes lists every route, optionally enriched with creator identities.
func (s *routeService) GetRoutes(ctx context.Context, enrich bool) ([]*entity.RouteWithCreator, error) {
	routes, err := s.routeRepo.FindAllRoutes(ctx)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if enrich {
		return s.enrichment.EnrichRoutesWithCreators(ctx, routes), nil
	}

	result := make([]*entity.RouteWithCreator, 0, len(routes))
	for _, route := range routes {
		result = append(result, &entity.RouteWithCreator{Route: *route})
	}

	return result, nil
}

// GetRouteByID loads a single route.
func (s *routeService) GetRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("route ID is required")
	}

	route, err := s.routeRepo.FindRouteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return route, nil
}

// GetRoutesByCreator lists a creator's routes.
func (s *routeService) GetRoutesByCreator(ctx context.Context, creatorID string) ([]*entity.Route, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, domainerrors.ErrCreatorRequired
	}

	routes, err := s.routeRepo.FindRoutesByCreator(ctx, creatorID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return routes, nil
}

// GetRoutesByRating lists routes rated within the inclusive range.
func (s *routeService) GetRoutesByRating(ctx context.Context, minR, maxR float64) ([]*entity.Route, error) {
	if minR < minRating || maxR > maxRating || minR > maxR {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid rating range")
	}

	routes, err := s.routeRepo.FindRoutesByRatingRange(ctx, minR, maxR)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return routes, nil
}

// FindNearbyRoutes searches routes around a reference point. The repository
// guarantees ascending distance ordering; it is propagated untouched.
func (s *routeService) FindNearbyRoutes(ctx context.Context, input *usecase.FindNearbyInput) ([]*entity.Route, error) {
	if input.Latitude < -90 || input.Latitude > 90 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("latitude must be between -90 and 90 degrees")
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("longitude must be between -180 and 180 degrees")
	}
	if input.RadiusM <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radius must be greater than 0 meters")
	}
	if input.RadiusM > maxNearbyRadiusM {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radius cannot exceed 100,000 meters")
	}

	routes, err := s.routeRepo.FindNearbyRoutes(ctx, input.Latitude, input.Longitude, input.RadiusM)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return routes, nil
}

// UpdateRoute applies a partial update after an ownership check. The creator
// is never updatable.
func (s *routeService) UpdateRoute(ctx context.Context, id uuid.UUID, input *usecase.UpdateRouteInput, userID string) (*entity.Route, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrUserRequired
	}

	existing, err := s.GetRouteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.enrichment.CanUserModifyRoute(existing, userID) {
		return nil, domainerrors.ErrRouteOwnership
	}

	name := existing.Name
	if input.Name != nil {
		name = *input.Name
	}
	if err := validateRouteFields(name, input.Name != nil, input.DistanceKm, input.EstTimeMin, input.AvgRating); err != nil {
		return nil, err
	}

	updated, err := s.routeRepo.UpdateRoute(ctx, id, &repository.UpdateRouteData{
		Name:       input.Name,
		DistanceKm: input.DistanceKm,
		EstTimeMin: input.EstTimeMin,
		AvgRating:  input.AvgRating,
		Geometry:   input.Geometry,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return updated, nil
}

// DeleteRoute removes a route after an ownership check.
func (s *routeService) DeleteRoute(ctx context.Context, id uuid.UUID, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrUserRequired
	}

	existing, err := s.GetRouteByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.enrichment.CanUserModifyRoute(existing, userID) {
		return domainerrors.ErrRouteOwnership
	}

	if err := s.routeRepo.DeleteRoute(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return domainerrors.ErrRouteNotFound
		}

		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

// CompleteRoute increments the completion counter atomically, then publishes
// a ROUTE_COMPLETED event carrying the route's stored score. A publish
// failure surfaces to the caller even though the increment already
// committed; completion and publication are not atomic.
func (s *routeService) CompleteRoute(ctx context.Context, routeID uuid.UUID, userID string, input *usecase.CompleteRouteInput) (*service.RouteCompletedEvent, error) {
	if routeID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("route ID is required")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrUserRequired
	}

	route, err := s.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	completedCount, err := s.routeRepo.IncrementCompletedCount(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	completed := true
	if input != nil && input.Completed != nil {
		completed = *input.Completed
	}

	var actualTimeMin *int
	if input != nil {
		actualTimeMin = input.ActualTimeMin
	}

	event := &service.RouteCompletedEvent{
		EventType:      service.EventTypeRouteCompleted,
		RouteID:        route.ID.String(),
		RouteName:      route.Name,
		CreatorID:      route.CreatorID,
		UserID:         userID,
		Completed:      completed,
		Score:          route.Score,
		CompletedCount: completedCount,
		DistanceKm:     route.DistanceKm,
		EstTimeMin:     route.EstTimeMin,
		ActualTimeMin:  actualTimeMin,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	s.logger.Info("route completed",
		slog.String("routeId", routeID.String()),
		slog.String("userId", userID),
		slog.Int("score", event.Score),
		slog.Int("completedCount", completedCount),
	)

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish route completed event",
			slog.String("routeId", routeID.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
	}

	return event, nil
}

// GetDirectionsToRouteStart loads the route and asks the routing engine for
// a path from the caller's position to its first coordinate.
func (s *routeService) GetDirectionsToRouteStart(ctx context.Context, routeID uuid.UUID, fromLat, fromLng float64) (orb.LineString, error) {
	if fromLat < -90 || fromLat > 90 || fromLng < -180 || fromLng > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid caller position")
	}

	route, err := s.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return s.metricsSvc.DirectionsToStart(ctx, fromLat, fromLng, route.Geometry)
}

// validateRouteFields applies the shared create/update field rules.
// checkName is false when an update leaves the name untouched.
func validateRouteFields(name string, checkName bool, distanceKm *float64, estTimeMin *int, avgRating *float64) error {
	if checkName {
		if strings.TrimSpace(name) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("route name is required")
		}
		if len(name) > entity.MaxRouteNameLength {
			return domainerrors.ErrValidationFailed.WrapMessage("route name is too long")
		}
	}

	if distanceKm != nil && *distanceKm < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("distance cannot be negative")
	}
	if estTimeMin != nil && *estTimeMin < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("estimated time cannot be negative")
	}
	if avgRating != nil && (*avgRating < minRating || *avgRating > maxRating) {
		return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 0 and 5")
	}

	return nil
}
