package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBackendURL is the local development address of the partner backend.
const DefaultBackendURL = "http://127.0.0.1:8000"

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Backend       BackendConfig
	Observability ObservabilityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	ServiceName  string
	Version      string
	ReadTimeout  int
	WriteTimeout int
	CORSOrigins  string // Comma-separated list of allowed origins
	// SiteURL is the host site base for /partnerships and /contact links.
	SiteURL string
}

// BackendConfig holds the partner REST backend configuration
type BackendConfig struct {
	// APIURL is used both for REST calls and to derive media asset URLs.
	APIURL  string
	Timeout int // in seconds, transport level only
}

// ObservabilityConfig holds logging, tracing and error reporting settings
type ObservabilityConfig struct {
	LogLevel     string
	SentryDSN    string
	OTLPEndpoint string
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ServiceName:  serviceName,
			Version:      getEnv("SERVICE_VERSION", "dev"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
			CORSOrigins:  getEnv("CORS_ORIGINS", "http://localhost:3000"),
			SiteURL:      strings.TrimRight(getEnv("SITE_BASE_URL", ""), "/"),
		},
		Backend: BackendConfig{
			APIURL:  getEnv("BACKEND_API_URL", getEnv("DJANGO_API_URL", DefaultBackendURL)),
			Timeout: getEnvAsInt("BACKEND_TIMEOUT", 30),
		},
		Observability: ObservabilityConfig{
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			SentryDSN:    getEnv("SENTRY_DSN", ""),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Backend.APIURL)
	if err != nil {
		return fmt.Errorf("config: BACKEND_API_URL invalid (%q): %w", c.Backend.APIURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: BACKEND_API_URL invalid (%q): missing scheme or host", c.Backend.APIURL)
	}
	if c.Server.SiteURL != "" {
		site, err := url.Parse(c.Server.SiteURL)
		if err != nil || site.Scheme == "" || site.Host == "" {
			return fmt.Errorf("config: SITE_BASE_URL invalid (%q): want an absolute URL", c.Server.SiteURL)
		}
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT must be positive, got %d", c.Backend.Timeout)
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins splits CORSOrigins into a list
func (c *ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
