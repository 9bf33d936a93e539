package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Taipei Main Station to Taipei 101, roughly 4 km apart.
	a := orb.Point{121.5170, 25.0478}
	b := orb.Point{121.5645, 25.0340}

	distance := HaversineKm(a, b)

	assert.InDelta(t, 5.0, distance, 1.0)
	assert.Greater(t, distance, 0.0)
}

func TestHaversineKm_SamePoint(t *testing.T) {
	p := orb.Point{121.5, 25.0}

	assert.Equal(t, 0.0, HaversineKm(p, p))
}

func TestPathDistanceKm_MonotonicallyNonDecreasing(t *testing.T) {
	path := orb.LineString{
		{121.50, 25.00},
		{121.51, 25.01},
		{121.52, 25.02},
		{121.53, 25.01},
		{121.55, 25.00},
	}

	previous := 0.0
	for end := 2; end <= len(path); end++ {
		distance, err := PathDistanceKm(path[:end])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, distance, previous)
		previous = distance
	}
}

func TestPathDistanceKm_TooFewPoints(t *testing.T) {
	_, err := PathDistanceKm(orb.LineString{{121.5, 25.0}})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = PathDistanceKm(orb.LineString{})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPathDistanceKm_DegeneratePath(t *testing.T) {
	// Two identical points produce a zero-length path, which is an error.
	p := orb.Point{121.5, 25.0}
	_, err := PathDistanceKm(orb.LineString{p, p})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestPathDistanceKm_SkipsNonFiniteSegments(t *testing.T) {
	path := orb.LineString{
		{121.50, 25.00},
		{math.NaN(), 25.01},
		{121.52, 25.02},
	}

	distance, err := PathDistanceKm(path)
	require.NoError(t, err)
	assert.Greater(t, distance, 0.0)
	assert.False(t, math.IsNaN(distance))
}

func TestSpeedKmh_Profiles(t *testing.T) {
	tests := []struct {
		profile Profile
		want    float64
	}{
		{ProfileWalking, 5},
		{ProfileCycling, 15},
		{ProfileDriving, 45},
		{Profile("rollerblading"), 5},
		{Profile(""), 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SpeedKmh(tt.profile), "profile %q", tt.profile)
	}
}

func TestEstimateTimeMin(t *testing.T) {
	// 5 km walking at 5 km/h is exactly one hour.
	assert.Equal(t, 60, EstimateTimeMin(5, ProfileWalking))

	// 45 km driving at 45 km/h is also one hour.
	assert.Equal(t, 60, EstimateTimeMin(45, ProfileDriving))

	assert.Equal(t, 0, EstimateTimeMin(0, ProfileWalking))
	assert.Equal(t, 0, EstimateTimeMin(-3, ProfileCycling))
}
