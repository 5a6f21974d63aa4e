package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

// -------------- Mapbox places client (geocoding only) ---------------

const (
	mapboxBaseURL = "https://api.mapbox.com"
	// Sabah bounding box as minLng,minLat,maxLng,maxLat.
	sabahBBox = "115.7,4.0,119.4,7.4"
)

type MapboxGeocoder struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
	Limiter     *rate.Limiter
}

func NewMapboxGeocoder(token string, timeout time.Duration, limiter *rate.Limiter) *MapboxGeocoder {
	return &MapboxGeocoder{
		HTTP:        newTimeoutClient(timeout),
		BaseURL:     mapboxBaseURL,
		AccessToken: token,
		Limiter:     limiter,
	}
}

func (c *MapboxGeocoder) Name() string { return "mapbox" }

func (c *MapboxGeocoder) Geocode(ctx context.Context, text string) (trip_models.Coordinate, bool, error) {
	place := strings.TrimSpace(text)
	if place == "" {
		return trip_models.Coordinate{}, false, nil
	}
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return trip_models.Coordinate{}, false, fmt.Errorf("mapbox rate limit: %w", err)
		}
	}

	q := url.Values{}
	q.Set("limit", "1")
	q.Set("country", "MY")
	q.Set("bbox", sabahBBox)
	q.Set("proximity", fmt.Sprintf("%g,%g", ServiceCenter.Lng, ServiceCenter.Lat))
	q.Set("access_token", c.AccessToken)
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s", c.BaseURL, url.PathEscape(place), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return trip_models.Coordinate{}, false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return trip_models.Coordinate{}, false, fmt.Errorf("mapbox geocode http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return trip_models.Coordinate{}, false, fmt.Errorf("%w: mapbox geocode bad status: %s", utils.ErrBackendUnavailable, resp.Status)
	}

	var payload struct {
		Features []struct {
			Center []float64 `json:"center"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return trip_models.Coordinate{}, false, fmt.Errorf("mapbox decode: %w", err)
	}
	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return trip_models.Coordinate{}, false, nil
	}
	center := payload.Features[0].Center
	return trip_models.Coordinate{Lng: center[0], Lat: center[1]}, true, nil
}
