package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

// Router computes a road path between two coordinates. A nil route with a
// nil error means the backend had no usable answer.
type Router interface {
	ComputeRoute(ctx context.Context, a, b trip_models.Coordinate, profile string) (*trip_models.Route, error)
	Name() string
}

const (
	orsBaseURL     = "https://api.openrouteservice.org"
	minLiveEtaMins = 8
)

// ORSRouter calls the openrouteservice directions API (geojson output).
type ORSRouter struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	Limiter *rate.Limiter
}

func NewORSRouter(apiKey string, timeout time.Duration, limiter *rate.Limiter) *ORSRouter {
	return &ORSRouter{
		HTTP:    newTimeoutClient(timeout),
		BaseURL: orsBaseURL,
		APIKey:  apiKey,
		Limiter: limiter,
	}
}

// newTimeoutClient is shared by the live backend clients.
func newTimeoutClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (r *ORSRouter) Name() string { return string(trip_models.RouteSourceORS) }

func (r *ORSRouter) ComputeRoute(ctx context.Context, a, b trip_models.Coordinate, profile string) (*trip_models.Route, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("ors rate limit: %w", err)
		}
	}

	body, err := json.Marshal(map[string]any{
		"coordinates": [][2]float64{{a.Lng, a.Lat}, {b.Lng, b.Lat}},
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", r.BaseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", r.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ors http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: ors bad status: %s", utils.ErrBackendUnavailable, resp.Status)
	}

	var payload struct {
		Features []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"`
					Duration float64 `json:"duration"`
				} `json:"summary"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ors decode: %w", err)
	}
	if len(payload.Features) == 0 {
		return nil, nil
	}

	feature := payload.Features[0]
	path := make([]trip_models.Coordinate, 0, len(feature.Geometry.Coordinates))
	for _, c := range feature.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		path = append(path, trip_models.Coordinate{Lng: c[0], Lat: c[1]})
	}

	summary := feature.Properties.Summary
	return &trip_models.Route{
		Path:       path,
		DistanceKm: geo.Round(summary.Distance/1000, 1),
		EtaMinutes: liveEta(summary.Duration),
		Source:     trip_models.RouteSourceORS,
	}, nil
}

// liveEta converts a backend duration in seconds to whole minutes with an
// eight-minute floor.
func liveEta(seconds float64) int {
	return max(minLiveEtaMins, int(math.Round(seconds/60)))
}
