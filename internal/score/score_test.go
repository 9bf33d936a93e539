package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{"zero distance", 0, 0},
		{"negative distance", -5, 0},
		{"below first bonus", 3, 30},
		{"first bonus tier", 5, 70},   // 50 base + 20
		{"second bonus tier", 10, 170}, // 100 base + 20 + 50
		{"marathon earns every tier", 42, 1290}, // 420 base + 20+50+100+200+500
		{"beyond marathon", 45, 1320}, // 450 base + 870 bonus
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.distanceKm))
		})
	}
}

func TestCalculate_NonFinite(t *testing.T) {
	assert.Equal(t, 0, Calculate(math.NaN()))
	assert.Equal(t, 0, Calculate(math.Inf(1)))
}

func TestCalculateWithConfig_CustomRate(t *testing.T) {
	cfg := Config{PointsPerKm: 2}

	assert.Equal(t, 10, CalculateWithConfig(5, cfg))
}

func TestCalculateWithDifficulty(t *testing.T) {
	// Bonuses are computed first, then the whole score is scaled and floored.
	assert.Equal(t, 105, CalculateWithDifficulty(5, 1.5)) // floor(70 * 1.5)
	assert.Equal(t, 70, CalculateWithDifficulty(5, 1))
	assert.Equal(t, 70, CalculateWithDifficulty(5, 0)) // non-positive factor is treated as 1
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "70 points (50 base + 20 bonus)", Describe(Calculate(5), 5))
	assert.Equal(t, "30 points", Describe(Calculate(3), 3))
}
