// Package usecase defines the application-facing interfaces of the route
// domain core.
package usecase

import (
	"context"

	"routehub/internal/domain/entity"
	"routehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateRouteInput carries the fields accepted when creating a route.
// When Geometry is present, distance/time are resolved through the routing
// engine and override any supplied static values.
type CreateRouteInput struct {
	Name       string         `json:"name"`
	DistanceKm *float64       `json:"distanceKm"`
	EstTimeMin *int           `json:"estTimeMin"`
	AvgRating  *float64       `json:"avgRating"`
	Geometry   orb.LineString `json:"geometry"`
}

// UpdateRouteInput carries a partial route update. Nil fields are untouched.
// The creator is never updatable.
type UpdateRouteInput struct {
	Name       *string         `json:"name"`
	DistanceKm *float64        `json:"distanceKm"`
	EstTimeMin *int            `json:"estTimeMin"`
	AvgRating  *float64        `json:"avgRating"`
	Geometry   *orb.LineString `json:"geometry"`
}

// CompleteRouteInput carries the fields reported when a user finishes a
// route. Completed defaults to true; ActualTimeMin is user-reported and
// optional. Any client-supplied score is ignored.
type CompleteRouteInput struct {
	Completed     *bool `json:"completed"`
	ActualTimeMin *int  `json:"actualTimeMin"`
}

// FindNearbyInput carries the proximity search parameters.
type FindNearbyInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusM   float64 `json:"radiusM"`
}

// RouteUsecase defines the interface for route management use cases.
// All operations validate inputs locally before touching the repository.
type RouteUsecase interface {
	// CreateRoute persists a new route for the creator. When geometry is
	// present, distance and time come from the routing engine (with a local
	// fallback) and the score is derived from the resolved distance.
	CreateRoute(ctx context.Context, input *CreateRouteInput, creatorID string) (*entity.Route, error)

	// GetRoutes lists every route, newest first, optionally enriched with
	// creator identities.
	GetRoutes(ctx context.Context, enrich bool) ([]*entity.RouteWithCreator, error)

	// GetRouteByID loads a single route.
	GetRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)

	// GetRoutesByCreator lists a creator's routes, newest first.
	GetRoutesByCreator(ctx context.Context, creatorID string) ([]*entity.Route, error)

	// GetRoutesByRating lists routes rated within [minRating, maxRating],
	// best rated first.
	GetRoutesByRating(ctx context.Context, minRating, maxRating float64) ([]*entity.Route, error)

	// FindNearbyRoutes searches routes around a reference point, closest
	// first. The repository is the ordering authority.
	FindNearbyRoutes(ctx context.Context, input *FindNearbyInput) ([]*entity.Route, error)

	// UpdateRoute applies a partial update. Only the creator may update.
	UpdateRoute(ctx context.Context, id uuid.UUID, input *UpdateRouteInput, userID string) (*entity.Route, error)

	// DeleteRoute removes a route. Only the creator may delete.
	DeleteRoute(ctx context.Context, id uuid.UUID, userID string) error

	// CompleteRoute records a completion: the counter increments and a
	// ROUTE_COMPLETED event is published. A publish failure surfaces even
	// though the increment already committed.
	CompleteRoute(ctx context.Context, routeID uuid.UUID, userID string, input *CompleteRouteInput) (*service.RouteCompletedEvent, error)

	// GetDirectionsToRouteStart returns an engine-computed path from the
	// caller's position to the route's first coordinate.
	GetDirectionsToRouteStart(ctx context.Context, routeID uuid.UUID, fromLat, fromLng float64) (orb.LineString, error)
}
