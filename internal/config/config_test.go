package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "POSTGRES_URL", "REDIS_ADDR", "REDIS_DB",
		"BACKEND_TIMEOUT", "GEOCODE_CACHE_TTL", "BACKEND_RATE_PER_SEC", "GEOCODER_PROVIDER",
		"ROUTER_PROVIDER", "SERVICE_TIMEZONE", "MAPBOX_ACCESS_TOKEN", "ORS_API_KEY", "GOOGLE_MAPS_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Backends.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Backends.Timeout)
	}
	if cfg.Backends.GeocoderProvider != "auto" || cfg.Backends.RouterProvider != "auto" {
		t.Errorf("providers = %q/%q", cfg.Backends.GeocoderProvider, cfg.Backends.RouterProvider)
	}
	if cfg.Database.Enabled() || cfg.Redis.Enabled() {
		t.Error("database and redis should be disabled without env")
	}
	if cfg.Timezone != "Asia/Kuching" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "750ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ROUTER_PROVIDER", "ORS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backends.Timeout != 750*time.Millisecond {
		t.Errorf("timeout = %v", cfg.Backends.Timeout)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.Backends.RouterProvider != "ors" {
		t.Errorf("router provider = %q", cfg.Backends.RouterProvider)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed BACKEND_TIMEOUT")
	}
}
