package services

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"travelbah/internal/config"
)

// Backends holds the live collaborators picked from configuration.
// Either field may be nil; the route service then uses local fallbacks.
type Backends struct {
	Geocoder Geocoder
	Router   Router
}

// NewBackends picks providers. "auto" prefers Mapbox for geocoding and
// openrouteservice for routing, then Google Maps; "none" disables the tier.
func NewBackends(cfg config.BackendConfig, cache GeocodeCache, logger *zap.Logger) (Backends, error) {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(1, int(math.Ceil(cfg.RatePerSecond))))
	}

	var google *GoogleMaps
	googleClient := func() (*GoogleMaps, error) {
		if google != nil {
			return google, nil
		}
		if cfg.GoogleMapsKey == "" {
			return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is empty")
		}
		g, err := NewGoogleMaps(cfg.GoogleMapsKey, cfg.Timeout, int(math.Ceil(cfg.RatePerSecond)))
		if err != nil {
			return nil, err
		}
		google = g
		return g, nil
	}

	var out Backends

	geocoderProvider := cfg.GeocoderProvider
	if geocoderProvider == "auto" || geocoderProvider == "" {
		switch {
		case cfg.MapboxToken != "":
			geocoderProvider = "mapbox"
		case cfg.GoogleMapsKey != "":
			geocoderProvider = "google"
		default:
			geocoderProvider = "none"
		}
	}
	switch geocoderProvider {
	case "mapbox":
		if cfg.MapboxToken == "" {
			return Backends{}, fmt.Errorf("geocoder mapbox: MAPBOX_ACCESS_TOKEN is empty")
		}
		out.Geocoder = NewMapboxGeocoder(cfg.MapboxToken, cfg.Timeout, limiter)
	case "google":
		g, err := googleClient()
		if err != nil {
			return Backends{}, fmt.Errorf("geocoder google: %w", err)
		}
		out.Geocoder = g
	case "none":
	default:
		return Backends{}, fmt.Errorf("unsupported geocoder provider: %s", geocoderProvider)
	}
	if out.Geocoder != nil && cache != nil {
		out.Geocoder = NewCachedGeocoder(out.Geocoder, cache, cfg.GeocodeCacheTTL)
	}

	routerProvider := cfg.RouterProvider
	if routerProvider == "auto" || routerProvider == "" {
		switch {
		case cfg.ORSKey != "":
			routerProvider = "ors"
		case cfg.GoogleMapsKey != "":
			routerProvider = "google"
		default:
			routerProvider = "none"
		}
	}
	switch routerProvider {
	case "ors":
		if cfg.ORSKey == "" {
			return Backends{}, fmt.Errorf("router ors: ORS_API_KEY is empty")
		}
		out.Router = NewORSRouter(cfg.ORSKey, cfg.Timeout, limiter)
	case "google":
		g, err := googleClient()
		if err != nil {
			return Backends{}, fmt.Errorf("router google: %w", err)
		}
		out.Router = g
	case "none":
	default:
		return Backends{}, fmt.Errorf("unsupported router provider: %s", routerProvider)
	}

	logger.Info("routing backends selected",
		zap.String("geocoder", geocoderProvider), zap.String("router", routerProvider))
	return out, nil
}
