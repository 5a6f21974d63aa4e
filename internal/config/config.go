package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the application configuration, read from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Backends BackendConfig
	Timezone string
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL string
}

func (c DatabaseConfig) Enabled() bool { return c.URL != "" }

type RedisConfig struct {
	Addr string
	DB   int
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// BackendConfig configures the optional geocoding and routing services.
// Empty keys disable a provider; planning then uses the local fallbacks.
type BackendConfig struct {
	MapboxToken      string
	ORSKey           string
	GoogleMapsKey    string
	GeocoderProvider string
	RouterProvider   string
	Timeout          time.Duration
	GeocodeCacheTTL  time.Duration
	RatePerSecond    float64
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, err
	}
	timeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "5s"))
	if err != nil {
		return nil, err
	}
	cacheTTL, err := time.ParseDuration(getEnv("GEOCODE_CACHE_TTL", "168h"))
	if err != nil {
		return nil, err
	}
	rate, err := strconv.ParseFloat(getEnv("BACKEND_RATE_PER_SEC", "5"), 64)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "production"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
			DB:   redisDB,
		},
		Backends: BackendConfig{
			MapboxToken:      os.Getenv("MAPBOX_ACCESS_TOKEN"),
			ORSKey:           os.Getenv("ORS_API_KEY"),
			GoogleMapsKey:    os.Getenv("GOOGLE_MAPS_API_KEY"),
			GeocoderProvider: strings.ToLower(getEnv("GEOCODER_PROVIDER", "auto")),
			RouterProvider:   strings.ToLower(getEnv("ROUTER_PROVIDER", "auto")),
			Timeout:          timeout,
			GeocodeCacheTTL:  cacheTTL,
			RatePerSecond:    rate,
		},
		Timezone: getEnv("SERVICE_TIMEZONE", "Asia/Kuching"),
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
