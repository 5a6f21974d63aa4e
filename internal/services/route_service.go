package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

const (
	fallbackSegments   = 16
	fallbackJitterDeg  = 0.003
	kmPerDegLng        = 111.0
	kmPerDegLat        = 85.0
	fallbackKmToMins   = 2.6
	minFallbackEtaMins = 10
)

type RouteServiceInterface interface {
	ResolveRoute(ctx context.Context, originText, destinationText string, mode trip_models.Mode) (trip_models.ResolvedRoute, error)
}

// RouteService turns two place names into a route. Live backends are
// optional; every backend failure falls through to a local tier, so the
// only error it returns is for blank input.
type RouteService struct {
	geocoder Geocoder
	router   Router
	center   trip_models.Coordinate
	timeout  time.Duration
	logger   *zap.Logger
}

// NewRouteService accepts nil geocoder or router when none is configured.
func NewRouteService(geocoder Geocoder, router Router, timeout time.Duration, logger *zap.Logger) *RouteService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RouteService{
		geocoder: geocoder,
		router:   router,
		center:   ServiceCenter,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *RouteService) ResolveRoute(ctx context.Context, originText, destinationText string, mode trip_models.Mode) (trip_models.ResolvedRoute, error) {
	if strings.TrimSpace(originText) == "" && strings.TrimSpace(destinationText) == "" {
		return trip_models.ResolvedRoute{}, fmt.Errorf("%w: origin and destination are both empty", utils.ErrInvalidInput)
	}

	var origin, destination trip_models.Coordinate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		origin = s.Geocode(gctx, originText)
		return nil
	})
	g.Go(func() error {
		destination = s.Geocode(gctx, destinationText)
		return nil
	})
	// Geocode never fails; every tier falls through to the jitter fallback.
	g.Wait()

	return trip_models.ResolvedRoute{
		Origin:      origin,
		Destination: destination,
		Route:       s.Route(ctx, origin, destination, mode),
	}, nil
}

// Geocode walks the tiers: literal "lat, lng", named places, the live
// geocoder, then the deterministic jitter around the service center.
func (s *RouteService) Geocode(ctx context.Context, text string) trip_models.Coordinate {
	if coord, ok := ParseCoordinatePair(text); ok {
		return coord
	}
	if coord, ok := LookupNamedPlace(text); ok {
		return coord
	}
	if s.geocoder != nil && strings.TrimSpace(text) != "" {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		coord, ok, err := s.geocoder.Geocode(cctx, text)
		cancel()
		switch {
		case err != nil:
			s.logger.Warn("geocoder failed, using fallback",
				zap.String("geocoder", s.geocoder.Name()), zap.String("place", text), zap.Error(err))
		case ok:
			return coord
		}
	}
	return JitterFallback(text, s.center)
}

// Route asks the live router first and synthesizes a path when it is
// missing, fails, times out or returns fewer than two points.
func (s *RouteService) Route(ctx context.Context, origin, destination trip_models.Coordinate, mode trip_models.Mode) trip_models.Route {
	if s.router != nil {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		r, err := s.router.ComputeRoute(cctx, origin, destination, mode.RoutingProfile())
		cancel()
		switch {
		case err != nil:
			s.logger.Warn("router failed, synthesizing route",
				zap.String("router", s.router.Name()), zap.Error(err))
		case r == nil || r.Validate() != nil:
			s.logger.Warn("router returned no usable path, synthesizing route",
				zap.String("router", s.router.Name()))
		default:
			return *r
		}
	}
	return SynthesizeRoute(origin, destination)
}

// SynthesizeRoute interpolates 16 segments between a and b and adds a small
// sinusoidal wobble so the line looks hand drawn. It is cosmetic and not a
// shortest path. Distance uses flat degree-to-km factors that only hold near
// the service region's latitude.
func SynthesizeRoute(a, b trip_models.Coordinate) trip_models.Route {
	path := make([]trip_models.Coordinate, 0, fallbackSegments+1)
	for i := 0; i <= fallbackSegments; i++ {
		t := float64(i) / fallbackSegments
		jitter := math.Sin(float64(i)*2.1) * fallbackJitterDeg
		path = append(path, trip_models.Coordinate{
			Lng: geo.Round(a.Lng+(b.Lng-a.Lng)*t+jitter, 6),
			Lat: geo.Round(a.Lat+(b.Lat-a.Lat)*t-jitter/2, 6),
		})
	}

	distanceKm := geo.Round(math.Abs(a.Lng-b.Lng)*kmPerDegLng+math.Abs(a.Lat-b.Lat)*kmPerDegLat, 1)
	return trip_models.Route{
		Path:       path,
		DistanceKm: distanceKm,
		EtaMinutes: max(minFallbackEtaMins, int(math.Round(distanceKm*fallbackKmToMins))),
		Source:     trip_models.RouteSourceSynthesized,
	}
}
