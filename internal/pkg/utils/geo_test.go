package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("same point is zero", func(t *testing.T) {
		points := [][2]float64{{0, 0}, {48.8566, 2.3522}, {-33.8688, 151.2093}, {90, 0}, {-90, 180}}
		for _, p := range points {
			assert.Equal(t, 0.0, HaversineDistance(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][4]float64{
			{48.8566, 2.3522, 51.5074, -0.1278},
			{41.3851, 2.1734, 40.4168, -3.7038},
			{-33.8688, 151.2093, 35.6762, 139.6503},
			{0, -179.9, 0, 179.9},
		}
		for _, p := range pairs {
			ab := HaversineDistance(p[0], p[1], p[2], p[3])
			ba := HaversineDistance(p[2], p[3], p[0], p[1])
			assert.InDelta(t, ab, ba, 1e-6)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	})

	t.Run("paris to london", func(t *testing.T) {
		// ~343.5 km по большому кругу
		d := HaversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
		assert.InDelta(t, 343500, d, 1500)
	})

	t.Run("antimeridian is short", func(t *testing.T) {
		d := HaversineDistance(0, -179.9, 0, 179.9)
		assert.Less(t, d, 25000.0)
	})
}

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 1234.6, RoundTo1(1234.56))
	assert.Equal(t, 0.0, RoundTo1(0.04))
	assert.Equal(t, 10.0, RoundTo1(9.96))
}
