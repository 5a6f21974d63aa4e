package services

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"travelbah/internal/config"
)

func backendConfig() config.BackendConfig {
	return config.BackendConfig{
		GeocoderProvider: "auto",
		RouterProvider:   "auto",
		Timeout:          time.Second,
		GeocodeCacheTTL:  time.Hour,
		RatePerSecond:    5,
	}
}

func TestNewBackends_AutoWithoutKeys(t *testing.T) {
	b, err := NewBackends(backendConfig(), NewInMemoryGeocodeCache(time.Hour), zap.NewNop())
	if err != nil {
		t.Fatalf("NewBackends: %v", err)
	}
	if b.Geocoder != nil || b.Router != nil {
		t.Fatalf("expected no live backends, got %+v", b)
	}
}

func TestNewBackends_AutoPrefersMapboxAndORS(t *testing.T) {
	cfg := backendConfig()
	cfg.MapboxToken = "tok"
	cfg.ORSKey = "key"

	b, err := NewBackends(cfg, NewInMemoryGeocodeCache(time.Hour), zap.NewNop())
	if err != nil {
		t.Fatalf("NewBackends: %v", err)
	}
	if _, ok := b.Geocoder.(*cachedGeocoder); !ok {
		t.Fatalf("geocoder should be cached, got %T", b.Geocoder)
	}
	if b.Geocoder.Name() != "mapbox" {
		t.Fatalf("geocoder = %s", b.Geocoder.Name())
	}
	ors, ok := b.Router.(*ORSRouter)
	if !ok {
		t.Fatalf("router = %T", b.Router)
	}
	if ors.Limiter == nil {
		t.Fatal("router has no rate limiter")
	}
}

func TestNewBackends_NoneAndNoCache(t *testing.T) {
	cfg := backendConfig()
	cfg.MapboxToken = "tok"
	cfg.ORSKey = "key"
	cfg.RouterProvider = "none"

	b, err := NewBackends(cfg, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBackends: %v", err)
	}
	if _, ok := b.Geocoder.(*MapboxGeocoder); !ok {
		t.Fatalf("geocoder = %T", b.Geocoder)
	}
	if b.Router != nil {
		t.Fatalf("router = %T, want nil", b.Router)
	}
}

func TestNewBackends_Errors(t *testing.T) {
	cases := map[string]func(*config.BackendConfig){
		"unknown geocoder":   func(c *config.BackendConfig) { c.GeocoderProvider = "here" },
		"unknown router":     func(c *config.BackendConfig) { c.RouterProvider = "osrm" },
		"mapbox without key": func(c *config.BackendConfig) { c.GeocoderProvider = "mapbox" },
		"ors without key":    func(c *config.BackendConfig) { c.RouterProvider = "ors" },
		"google without key": func(c *config.BackendConfig) { c.RouterProvider = "google" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := backendConfig()
			mutate(&cfg)
			if _, err := NewBackends(cfg, nil, zap.NewNop()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
