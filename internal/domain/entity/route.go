// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MaxRouteNameLength is the longest name a route may carry.
const MaxRouteNameLength = 150

// Route is the core entity for a named geospatial path owned by a creator.
// Geometry is an ordered sequence of (longitude, latitude) pairs in SRID 4326.
type Route struct {
	ID             uuid.UUID      // The unique identifier, generated on creation.
	CreatorID      string         // Owner identity; set once at creation, never updated.
	Name           string         // Display name, required, at most MaxRouteNameLength chars.
	DistanceKm     *float64       // Total path length in kilometers; nil when unknown.
	EstTimeMin     *int           // Estimated completion time in minutes; nil when unknown.
	AvgRating      float64        // Average user rating in [0, 5].
	CompletedCount int            // How many times the route has been completed.
	Score          int            // Gamified point value derived from distance.
	Geometry       orb.LineString // Path coordinates in (lng, lat) order; may be empty.
	CreatedAt      time.Time      // Timestamp of when this route was created.
	UpdatedAt      time.Time      // Timestamp of the last modification.
}

// HasGeometry reports whether the route carries a usable path.
func (r *Route) HasGeometry() bool {
	return len(r.Geometry) >= 2
}

// StartPoint returns the first coordinate of the route geometry.
// The boolean is false when the route has no geometry.
func (r *Route) StartPoint() (orb.Point, bool) {
	if len(r.Geometry) == 0 {
		return orb.Point{}, false
	}

	return r.Geometry[0], true
}
