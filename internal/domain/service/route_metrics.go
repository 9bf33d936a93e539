package service

import (
	"context"

	"github.com/paulmach/orb"
)

// RouteMetrics carries the resolved travel metrics for a route geometry.
type RouteMetrics struct {
	DistanceKm float64
	EstTimeMin int
}

// RouteMetricsService defines the integration with an external routing
// engine.
type RouteMetricsService interface {
	// CalculateRouteMetrics resolves distance and estimated time for a path.
	// Engine failures degrade to a local great-circle estimate, so the call
	// only errors when the geometry itself is unusable.
	CalculateRouteMetrics(ctx context.Context, geometry orb.LineString) (*RouteMetrics, error)

	// DirectionsToStart returns a path from the caller's position to the
	// first coordinate of the route geometry. Directions need real road
	// network data, so there is no local fallback: engine failures surface
	// as errors.
	DirectionsToStart(ctx context.Context, fromLat, fromLng float64, geometry orb.LineString) (orb.LineString, error)
}
