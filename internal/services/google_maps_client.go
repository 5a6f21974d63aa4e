package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
)

// Sabah bounds. Google only uses them as a bias, so results are also
// filtered against them after decoding.
var sabahBounds = &maps.LatLngBounds{
	NorthEast: maps.LatLng{Lat: 7.4, Lng: 119.4},
	SouthWest: maps.LatLng{Lat: 4.0, Lng: 115.7},
}

// GoogleMaps wraps a maps client and serves as both Geocoder and Router.
type GoogleMaps struct {
	client *maps.Client
}

func NewGoogleMaps(apiKey string, timeout time.Duration, ratePerSec int, opts ...maps.ClientOption) (*GoogleMaps, error) {
	base := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(newTimeoutClient(timeout)),
	}
	if ratePerSec > 0 {
		base = append(base, maps.WithRateLimit(ratePerSec))
	}
	client, err := maps.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	return &GoogleMaps{client: client}, nil
}

func (g *GoogleMaps) Name() string { return string(trip_models.RouteSourceGoogle) }

func (g *GoogleMaps) Geocode(ctx context.Context, text string) (trip_models.Coordinate, bool, error) {
	place := strings.TrimSpace(text)
	if place == "" {
		return trip_models.Coordinate{}, false, nil
	}
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: place,
		Bounds:  sabahBounds,
		Region:  "my",
	})
	if err != nil {
		return trip_models.Coordinate{}, false, fmt.Errorf("google geocode: %w", err)
	}
	if len(results) == 0 {
		return trip_models.Coordinate{}, false, nil
	}
	loc := results[0].Geometry.Location
	if !withinBounds(sabahBounds, loc) {
		return trip_models.Coordinate{}, false, nil
	}
	return trip_models.Coordinate{Lng: loc.Lng, Lat: loc.Lat}, true, nil
}

func withinBounds(b *maps.LatLngBounds, p maps.LatLng) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// ComputeRoute requests driving directions. Google has no heavy-vehicle
// profile, so every profile maps to driving.
func (g *GoogleMaps) ComputeRoute(ctx context.Context, a, b trip_models.Coordinate, _ string) (*trip_models.Route, error) {
	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", a.Lat, a.Lng),
		Destination: fmt.Sprintf("%f,%f", b.Lat, b.Lng),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("google directions: %w", err)
	}
	if len(routes) == 0 {
		return nil, nil
	}

	rt := routes[0]
	points, err := rt.OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("google polyline: %w", err)
	}
	path := make([]trip_models.Coordinate, 0, len(points))
	for _, p := range points {
		path = append(path, trip_models.Coordinate{Lng: p.Lng, Lat: p.Lat})
	}

	meters := 0
	var duration time.Duration
	for _, leg := range rt.Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
	}

	return &trip_models.Route{
		Path:       path,
		DistanceKm: geo.Round(float64(meters)/1000, 1),
		EtaMinutes: liveEta(duration.Seconds()),
		Source:     trip_models.RouteSourceGoogle,
	}, nil
}
