package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name   string
		a, b   orb.Point
		wantKm float64
		delta  float64
	}{
		{
			name:   "nearby lekki listings",
			a:      orb.Point{3.4219, 6.4281},
			b:      orb.Point{3.4223, 6.4285},
			wantKm: 0.0627,
			delta:  0.001,
		},
		{
			name:   "one degree of latitude",
			a:      orb.Point{0, 0},
			b:      orb.Point{0, 1},
			wantKm: 111.195,
			delta:  0.01,
		},
		{
			name:   "lagos to abuja",
			a:      orb.Point{3.3792, 6.5244},
			b:      orb.Point{7.3986, 9.0765},
			wantKm: 525.9,
			delta:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, DistanceKm(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []orb.Point{
		{3.4219, 6.4281},
		{3.4223, 6.4285},
		{-0.1276, 51.5072},
		{151.2093, -33.8688},
		{-179.9, 0},
		{179.9, 0},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
		}
	}
}

func TestDistanceKm_ZeroIffEqual(t *testing.T) {
	p := orb.Point{3.4219, 6.4281}
	assert.Zero(t, DistanceKm(p, p))

	q := orb.Point{3.42190001, 6.4281}
	assert.Greater(t, DistanceKm(p, q), 0.0)
}

func TestBoundAround_ContainsRadius(t *testing.T) {
	center := orb.Point{3.4219, 6.4281}
	bound := BoundAround(center, 0.1)

	near := orb.Point{3.4223, 6.4285}
	assert.True(t, bound.Contains(near))

	far := orb.Point{3.4319, 6.4281}
	assert.False(t, bound.Contains(far))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidLatitude(-90))
	assert.True(t, ValidLatitude(90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(math.NaN()))
	assert.True(t, ValidLongitude(-180))
	assert.True(t, ValidLongitude(179.9999))
	assert.False(t, ValidLongitude(math.Inf(-1)))
	assert.False(t, ValidLongitude(math.NaN()))
}
