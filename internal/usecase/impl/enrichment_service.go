package impl

import (
	"context"
	"log/slog"
	"sync"

	"routehub/internal/domain/entity"
	"routehub/internal/domain/service"
	"routehub/internal/usecase"
)

type enrichmentService struct {
	logger     *slog.Logger
	authClient service.AuthClient
}

// NewEnrichmentService creates a new enrichment service instance
func NewEnrichmentService(logger *slog.Logger, authClient service.AuthClient) usecase.EnrichmentUsecase {
	return &enrichmentService{
		logger:     logger,
		authClient: authClient,
	}
}

// EnrichRouteWithCreator attaches the creator's identity to a route. Lookup
// failures degrade to a nil creator; the base route is never mutated.
func (s *enrichmentService) EnrichRouteWithCreator(ctx context.Context, route *entity.Route) *entity.RouteWithCreator {
	enriched := &entity.RouteWithCreator{Route: *route}

	if route.CreatorID == "" {
		s.logger.Warn("route has no creator ID",
			slog.String("routeId", route.ID.String()),
		)

		return enriched
	}

	creator, err := s.authClient.GetUserByID(ctx, route.CreatorID)
	if err != nil {
		s.logger.Error("failed to fetch creator for route",
			slog.String("routeId", route.ID.String()),
			slog.String("creatorId", route.CreatorID),
			slog.String("error", err.Error()),
		)

		return enriched
	}
	if creator == nil {
		s.logger.Warn("creator not found for route",
			slog.String("routeId", route.ID.String()),
			slog.String("creatorId", route.CreatorID),
		)
	}

	enriched.Creator = creator

	return enriched
}

// EnrichRoutesWithCreators enriches many routes with concurrent creator
// lookups. Each lookup already degrades individually, so the joined result
// is either fully applied or carries nil creators where lookups failed.
func (s *enrichmentService) EnrichRoutesWithCreators(ctx context.Context, routes []*entity.Route) []*entity.RouteWithCreator {
	enriched := make([]*entity.RouteWithCreator, len(routes))

	var wg sync.WaitGroup
	for i, route := range routes {
		wg.Add(1)
		go func(i int, route *entity.Route) {
			defer wg.Done()
			enriched[i] = s.EnrichRouteWithCreator(ctx, route)
		}(i, route)
	}
	wg.Wait()

	return enriched
}

// GetCreatorSummary returns the public fields of a creator. Returns
// (nil, nil) when the creator is unknown or the auth service failed.
func (s *enrichmentService) GetCreatorSummary(ctx context.Context, creatorID string) (*entity.CreatorSummary, error) {
	creator, err := s.authClient.GetUserByID(ctx, creatorID)
	if err != nil {
		s.logger.Error("failed to fetch creator summary",
			slog.String("creatorId", creatorID),
			slog.String("error", err.Error()),
		)

		return nil, nil
	}
	if creator == nil {
		return nil, nil
	}

	summary := creator.Summary()

	return &summary, nil
}

// CanUserViewRoute reports whether a user may view a route. All routes are
// currently visible to any authenticated user; this is the extension point
// for private or shared routes.
func (s *enrichmentService) CanUserViewRoute(_ *entity.Route, _ string) bool {
	return true
}

// CanUserModifyRoute reports whether a user may modify a route. Only the
// creator may.
func (s *enrichmentService) CanUserModifyRoute(route *entity.Route, userID string) bool {
	return route.CreatorID == userID
}
