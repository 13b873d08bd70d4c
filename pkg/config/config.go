package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default:0.0.0.0:8080,env:HTTP_ADDR"`

	// Redis backs sessions and the publisher stats read model.
	RedisURL string `conf:"default:redis://localhost:6379,env:REDIS_URL"`

	// Events: PostgreSQL used by the Watermill SQL transport.
	// Empty disables event publishing in the API process.
	EventsDatabaseURL string `conf:"env:EVENTS_DATABASE_URL,noprint"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Session
	SessionAuthKey       string `conf:"default:dev-auth-key-32-bytes-long!!!!!!,env:SESSION_AUTH_KEY,noprint"`
	SessionEncryptionKey string `conf:"default:dev-encryption-key-32-bytes!!!!!,env:SESSION_ENCRYPTION_KEY,noprint"`

	// AllowDevLogin mounts POST /api/session, which trusts the principal in the
	// request body. Never enable outside development.
	AllowDevLogin bool `conf:"default:false,env:ALLOW_DEV_LOGIN"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:promptregistry,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if len(cfg.SessionAuthKey) < 32 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_AUTH_KEY must be at least 32 bytes (got %d); generate with: openssl rand -base64 32",
			len(cfg.SessionAuthKey),
		))
	}

	if !validAESKeyLen(len(cfg.SessionEncryptionKey)) {
		errs = append(errs, fmt.Sprintf(
			"SESSION_ENCRYPTION_KEY must be exactly 16, 24 or 32 bytes (got %d); generate with: openssl rand -hex 16",
			len(cfg.SessionEncryptionKey),
		))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.AllowDevLogin {
		errs = append(errs, "ALLOW_DEV_LOGIN must be false in production (the dev login trusts any principal)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}

// validAESKeyLen reports whether n selects AES-128, AES-192 or AES-256.
func validAESKeyLen(n int) bool {
	return n == 16 || n == 24 || n == 32
}
