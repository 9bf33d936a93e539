// Package geo provides pure geographic calculations for route paths.
//
// All distances use the Haversine formula on WGS-84 coordinates. Travel time
// is estimated from a per-profile average speed; it is the deterministic
// local fallback when the external routing engine is unavailable.
package geo

import (
	"math"

	"routehub/internal/errors"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the mean radius of Earth in meters.
const EarthRadiusM = 6_371_000.0

// Profile identifies a travel mode used for time estimation.
type Profile string

// Travel profiles recognized by the routing engine and the local estimator.
const (
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
	ProfileDriving Profile = "driving"
)

// ErrInvalidGeometry is returned when a path has fewer than two usable
// coordinates or degenerates to a zero-length or non-finite distance.
var ErrInvalidGeometry = errors.New("geometry must contain at least two valid coordinates")

// SpeedKmh returns the assumed average speed for a travel profile.
// Unknown profiles fall back to walking speed.
func SpeedKmh(profile Profile) float64 {
	switch profile {
	case ProfileWalking:
		return 5
	case ProfileCycling:
		return 15
	case ProfileDriving:
		return 45
	default:
		return 5
	}
}

// PathDistanceKm returns the total great-circle length of an ordered path in
// kilometers. Segments with a non-finite endpoint are skipped; the call only
// fails when fewer than two coordinates were supplied or the total collapses
// to zero or a non-finite value.
func PathDistanceKm(path orb.LineString) (float64, error) {
	if len(path) < 2 {
		return 0, errors.WithStack(ErrInvalidGeometry)
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		if !isFinitePoint(path[i]) || !isFinitePoint(path[i+1]) {
			continue
		}

		total += HaversineKm(path[i], path[i+1])
	}

	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, errors.WithStack(ErrInvalidGeometry)
	}

	return total, nil
}

// EstimateTimeMin returns the estimated travel time in whole minutes for a
// distance at the given profile's average speed.
func EstimateTimeMin(distanceKm float64, profile Profile) int {
	if distanceKm <= 0 {
		return 0
	}

	minutes := distanceKm / SpeedKmh(profile) * 60

	return int(math.Round(minutes))
}

// HaversineKm returns the great-circle distance between two (lng, lat)
// points in kilometers.
func HaversineKm(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLng := degToRad(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM / 1000 * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinitePoint(p orb.Point) bool {
	return !math.IsNaN(p.Lon()) && !math.IsInf(p.Lon(), 0) &&
		!math.IsNaN(p.Lat()) && !math.IsInf(p.Lat(), 0)
}
