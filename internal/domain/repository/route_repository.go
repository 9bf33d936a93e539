// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"routehub/internal/domain/entity"
	"routehub/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for route persistence.
var (
	// ErrRouteNotFound is returned when a route is not found.
	ErrRouteNotFound = errors.New("route not found")
)

// UpdateRouteData carries a partial update. Nil fields are left untouched.
// CreatorID is deliberately absent: ownership never changes after creation.
type UpdateRouteData struct {
	Name       *string
	DistanceKm *float64
	EstTimeMin *int
	AvgRating  *float64
	Score      *int
	Geometry   *orb.LineString
}

// RouteRepository defines the interface for route-related database operations.
// The proximity query relies on a geography-aware spatial index in the
// backing store; callers depend on its distance ordering, not its mechanism.
type RouteRepository interface {
	// CreateRoute persists a new route and fills in generated values
	// (ID, timestamps).
	CreateRoute(ctx context.Context, route *entity.Route) error

	// FindAllRoutes retrieves every route, newest first.
	FindAllRoutes(ctx context.Context) ([]*entity.Route, error)

	// FindRouteByID retrieves a route by its unique ID.
	// Returns ErrRouteNotFound when no route matches.
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)

	// FindRoutesByCreator retrieves all routes owned by a creator, newest first.
	FindRoutesByCreator(ctx context.Context, creatorID string) ([]*entity.Route, error)

	// FindRoutesByRatingRange retrieves routes whose average rating falls in
	// [minRating, maxRating], best rated first.
	FindRoutesByRatingRange(ctx context.Context, minRating, maxRating float64) ([]*entity.Route, error)

	// FindNearbyRoutes returns all routes whose geometry lies within radiusM
	// meters of the reference point, ordered by ascending spherical distance
	// from that point.
	FindNearbyRoutes(ctx context.Context, latitude, longitude, radiusM float64) ([]*entity.Route, error)

	// UpdateRoute applies a partial update and returns the updated route.
	// Returns ErrRouteNotFound when no record was affected.
	UpdateRoute(ctx context.Context, id uuid.UUID, data *UpdateRouteData) (*entity.Route, error)

	// DeleteRoute removes a route by its ID.
	// Returns ErrRouteNotFound when no record was removed.
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	// IncrementCompletedCount atomically bumps the completion counter by one
	// and returns the new value. Returns ErrRouteNotFound when no record
	// was affected.
	IncrementCompletedCount(ctx context.Context, id uuid.UUID) (int, error)
}
