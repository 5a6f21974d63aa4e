package trip_models

import "errors"

type RouteSource string

const (
	RouteSourceSynthesized RouteSource = "synthesized"
	RouteSourceORS         RouteSource = "openrouteservice"
	RouteSourceGoogle      RouteSource = "google"
)

// Route is an ordered path from origin to destination, endpoints included.
// Spacing between points is not uniform.
type Route struct {
	Path       []Coordinate
	DistanceKm float64
	EtaMinutes int
	Source     RouteSource
}

var ErrRouteTooShort = errors.New("route needs at least 2 points")

func (r Route) Validate() error {
	if len(r.Path) < 2 {
		return ErrRouteTooShort
	}
	return nil
}

// ResolvedRoute is a route together with the geocoded endpoints.
type ResolvedRoute struct {
	Origin      Coordinate
	Destination Coordinate
	Route       Route
}
