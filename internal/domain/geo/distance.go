// Package geo provides great-circle distance helpers for listing coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance in kilometers between two points.
// Points are orb points, so X is longitude and Y is latitude.
func DistanceKm(a, b orb.Point) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Rounding can push h slightly above 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundAround returns a bounding box that contains every point within radiusKm of center.
// It is a cheap prefilter; callers must still confirm candidates with DistanceKm.
func BoundAround(center orb.Point, radiusKm float64) orb.Bound {
	// orb measures in meters on a slightly different radius; pad so the box never under-covers.
	return orbgeo.NewBoundAroundPoint(center, radiusKm*1000*1.01)
}

// ValidLatitude reports whether lat is a finite WGS84 latitude.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is a finite WGS84 longitude.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
