// Package geo holds the great-circle helpers used by scoring and routing.
package geo

import (
	"math"

	"travelbah/internal/models/trip_models"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between a and b in kilometers.
// Invalid input propagates NaN instead of failing.
func DistanceKm(a, b trip_models.Coordinate) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// MinDistanceKm returns the smallest distance from p to any point of path,
// or +Inf when the path is empty.
func MinDistanceKm(p trip_models.Coordinate, path []trip_models.Coordinate) float64 {
	best := math.Inf(1)
	for _, c := range path {
		if d := DistanceKm(c, p); d < best {
			best = d
		}
	}
	return best
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
