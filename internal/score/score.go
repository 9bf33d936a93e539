// Package score computes the gamified point value of a route from its
// distance. Calculations are pure: no I/O, deterministic for given inputs.
package score

import (
	"fmt"
	"math"
)

// Threshold awards bonus points once a route reaches a distance milestone.
// Thresholds are cumulative: a long route earns every bonus tier it passes.
type Threshold struct {
	DistanceKm float64
	Bonus      int
}

// Config tunes the score calculation. The zero value is not useful; start
// from DefaultConfig and override fields per call.
type Config struct {
	PointsPerKm     float64
	BonusThresholds []Threshold
}

// DefaultConfig is the standard scoring scheme: 10 points per kilometer plus
// milestone bonuses up to the marathon tier.
func DefaultConfig() Config {
	return Config{
		PointsPerKm: 10,
		BonusThresholds: []Threshold{
			{DistanceKm: 5, Bonus: 20},
			{DistanceKm: 10, Bonus: 50},
			{DistanceKm: 15, Bonus: 100},
			{DistanceKm: 21, Bonus: 200}, // half marathon
			{DistanceKm: 42, Bonus: 500}, // marathon
		},
	}
}

// Calculate returns the score for a route distance using the default
// configuration. Zero or negative distances score zero.
func Calculate(distanceKm float64) int {
	return CalculateWithConfig(distanceKm, DefaultConfig())
}

// CalculateWithConfig returns floor(distance * pointsPerKm) plus the bonus of
// every threshold the distance reaches.
func CalculateWithConfig(distanceKm float64, cfg Config) int {
	if distanceKm <= 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0
	}

	total := int(math.Floor(distanceKm * cfg.PointsPerKm))
	for _, threshold := range cfg.BonusThresholds {
		if distanceKm >= threshold.DistanceKm {
			total += threshold.Bonus
		}
	}

	return total
}

// CalculateWithDifficulty scales the full score (base plus bonuses) by a
// difficulty factor and floors the result. Bonuses are not re-applied after
// scaling. A factor of 1 leaves the score unchanged.
func CalculateWithDifficulty(distanceKm, difficulty float64) int {
	base := Calculate(distanceKm)
	if difficulty <= 0 {
		difficulty = 1
	}

	return int(math.Floor(float64(base) * difficulty))
}

// Describe renders a human-readable breakdown of a score.
func Describe(total int, distanceKm float64) string {
	base := int(math.Floor(distanceKm * DefaultConfig().PointsPerKm))
	bonus := total - base

	if bonus > 0 {
		return fmt.Sprintf("%d points (%d base + %d bonus)", total, base, bonus)
	}

	return fmt.Sprintf("%d points", total)
}
