package usecase

import (
	"context"

	"routehub/internal/domain/entity"
)

// EnrichmentUsecase decorates routes with creator identities fetched from
// the external auth service. Enrichment is best-effort: it never fails the
// surrounding read operation.
type EnrichmentUsecase interface {
	// EnrichRouteWithCreator attaches the creator's identity to a route.
	// On any lookup failure the creator field is nil.
	EnrichRouteWithCreator(ctx context.Context, route *entity.Route) *entity.RouteWithCreator

	// EnrichRoutesWithCreators enriches many routes concurrently. Failures
	// degrade all-or-nothing: either every lookup result is applied or all
	// creators are nil.
	EnrichRoutesWithCreators(ctx context.Context, routes []*entity.Route) []*entity.RouteWithCreator

	// GetCreatorSummary returns the public fields of a creator with a
	// partially masked email. Returns (nil, nil) when the creator is unknown.
	GetCreatorSummary(ctx context.Context, creatorID string) (*entity.CreatorSummary, error)

	// CanUserViewRoute reports whether a user may view a route. The policy
	// is currently open.
	CanUserViewRoute(route *entity.Route, userID string) bool

	// CanUserModifyRoute reports whether a user may modify a route.
	// Modification is creator-only.
	CanUserModifyRoute(route *entity.Route, userID string) bool
}
