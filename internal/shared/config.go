package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	LogLevel    string

	DatasetPath   string
	DatasetDriver string
	DatasetDSN    string

	RedisAddr       string
	RedisDB         int
	RedisPass       string
	RateLimit       int
	RateLimitWindow time.Duration

	CORSOrigins []string

	OpenWeatherBase string
	OpenWeatherKey  string
	BookingBase     string
	BookingHost     string
	RapidAPIKey     string
	PlacesBase      string
	PlacesKey       string
	Currency        string
	Timezone        string

	UpstreamTimeout time.Duration
	UpstreamRPS     int
	FanOut          int
	RequestTimeout  time.Duration
	SeedBatch       int
	SeedWorkers     int
}

// Load reads the environment, after an optional .env file in the working directory.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8000"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		LogLevel:    env("LOG_LEVEL", "info"),

		DatasetPath:   env("DATASET_PATH", "data/travel_dataset.csv"),
		DatasetDriver: env("DATASET_DRIVER", "mysql"),
		DatasetDSN:    env("DATASET_DSN", ""),

		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		RateLimit:       atoi("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow: dur("RATE_LIMIT_WINDOW", 15*time.Minute),

		CORSOrigins: list("CORS_ORIGINS", "*"),

		OpenWeatherBase: env("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		OpenWeatherKey:  env("OPENWEATHER_API_KEY", ""),
		BookingBase:     env("BOOKING_BASE_URL", "https://booking-com.p.rapidapi.com"),
		BookingHost:     env("BOOKING_HOST", "booking-com.p.rapidapi.com"),
		RapidAPIKey:     env("RAPIDAPI_KEY", ""),
		PlacesBase:      env("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		PlacesKey:       env("GOOGLE_PLACES_API_KEY", ""),
		Currency:        env("CURRENCY", "INR"),
		Timezone:        env("TZ_NAME", ""),

		UpstreamTimeout: dur("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamRPS:     atoi("UPSTREAM_RPS", 0),
		FanOut:          atoi("FANOUT_LIMIT", 6),
		RequestTimeout:  dur("REQUEST_TIMEOUT", 60*time.Second),
		SeedBatch:       atoi("SEED_BATCH", 200),
		SeedWorkers:     atoi("SEED_WORKERS", 4),
	}
	for k, v := range map[string]string{
		"OPENWEATHER_API_KEY":   c.OpenWeatherKey,
		"RAPIDAPI_KEY":          c.RapidAPIKey,
		"GOOGLE_PLACES_API_KEY": c.PlacesKey,
	} {
		if v == "" {
			log.Warn().Str("key", k).Msg("provider key is empty; that section will fall back to sample data")
		}
	}
	return c
}

// Location resolves Timezone, falling back to the host zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", c.Timezone).Msg("unknown timezone; using local")
		return time.Local
	}
	return loc
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer; using default")
	}
	return def
}

// dur accepts a Go duration ("15m") or whole seconds ("900").
func dur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Warn().Str("key", k).Str("value", v).Msg("not a duration; using default")
	return def
}

func list(k, def string) []string {
	var out []string
	for _, p := range strings.Split(env(k, def), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
