package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize      int
	CacheTTL       time.Duration
	LookupCacheTTL time.Duration

	// Upstream providers
	FileServices     ServiceEndpoint
	LookupServices   ServiceEndpoint
	LocationServices ServiceEndpoint
	UpstreamTimeout  time.Duration

	// Circuit breaker around upstream operations
	BreakerEnabled      bool
	BreakerMinRequests  uint32
	BreakerFailureRatio float64
	BreakerOpenTimeout  time.Duration

	// Request identity
	RequestApplicationCode       string
	RequestSearchApplicationCode string
	RequestAgencyIdentifierID    string
	RequestPartID                string

	// Redaction policy
	HearingRestrictionTypes []string
	DocumentCategoriesFile  string

	// API settings
	CorsDomain    string
	APIRateLimit  int
	APIRateWindow time.Duration
}

// ServiceEndpoint is the base URL and basic-auth credentials of one provider.
type ServiceEndpoint struct {
	URL      string
	Username string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/court_viewer.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		FileServices: ServiceEndpoint{
			URL:      getEnv("FILE_SERVICES_URL", "http://localhost:5000"),
			Username: getEnv("FILE_SERVICES_USERNAME", ""),
			Password: getEnv("FILE_SERVICES_PASSWORD", ""),
		},
		LookupServices: ServiceEndpoint{
			URL:      getEnv("LOOKUP_SERVICES_URL", "http://localhost:5001"),
			Username: getEnv("LOOKUP_SERVICES_USERNAME", ""),
			Password: getEnv("LOOKUP_SERVICES_PASSWORD", ""),
		},
		LocationServices: ServiceEndpoint{
			URL:      getEnv("LOCATION_SERVICES_URL", "http://localhost:5002"),
			Username: getEnv("LOCATION_SERVICES_USERNAME", ""),
			Password: getEnv("LOCATION_SERVICES_PASSWORD", ""),
		},
		RequestApplicationCode:       getEnv("REQUEST_APPLICATION_CD", "SCV"),
		RequestSearchApplicationCode: getEnv("REQUEST_SEARCH_APPLICATION_CD", "A2A"),
		RequestAgencyIdentifierID:    getEnv("REQUEST_AGENCY_IDENTIFIER_ID", ""),
		RequestPartID:                getEnv("REQUEST_PART_ID", ""),
		HearingRestrictionTypes:      splitList(getEnv("HEARING_RESTRICTION_TYPES", "S")),
		DocumentCategoriesFile:       getEnv("DOCUMENT_CATEGORIES_FILE", ""),
		CorsDomain:                   getEnv("CORS_DOMAIN", "*"),
	}

	// Parse integer values
	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	lookupTTL, err := strconv.Atoi(getEnv("LOOKUP_CACHE_TTL", "720"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_CACHE_TTL: %w", err)
	}
	cfg.LookupCacheTTL = time.Duration(lookupTTL) * time.Minute

	upstreamTimeout, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.UpstreamTimeout = time.Duration(upstreamTimeout) * time.Second

	cfg.BreakerEnabled = getEnv("BREAKER_ENABLED", "true") == "true"

	minRequests, err := strconv.ParseUint(getEnv("BREAKER_MIN_REQUESTS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid BREAKER_MIN_REQUESTS: %w", err)
	}
	cfg.BreakerMinRequests = uint32(minRequests)

	cfg.BreakerFailureRatio, err = strconv.ParseFloat(getEnv("BREAKER_FAILURE_RATIO", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BREAKER_FAILURE_RATIO: %w", err)
	}

	openTimeout, err := strconv.Atoi(getEnv("BREAKER_OPEN_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid BREAKER_OPEN_TIMEOUT: %w", err)
	}
	cfg.BreakerOpenTimeout = time.Duration(openTimeout) * time.Second

	cfg.APIRateLimit, err = strconv.Atoi(getEnv("API_RATE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT: %w", err)
	}

	apiRateWindow, err := strconv.Atoi(getEnv("API_RATE_WINDOW", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_WINDOW: %w", err)
	}
	cfg.APIRateWindow = time.Duration(apiRateWindow) * time.Second

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
