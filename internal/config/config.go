package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	defaultJWTSecret = "change-me-jwt-secret"
	minJWTSecretLen  = 32
)

type Config struct {
	AppEnv      string   `env:"APP_ENV" envDefault:"dev"`
	Port        string   `env:"PORT" envDefault:"8080"`
	DatabaseURL string   `env:"DATABASE_URL" envDefault:"academy.db"`
	JWTSecret   string   `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	GinMode     string   `env:"GIN_MODE" envDefault:"debug"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Bootstrap BootstrapConfig `envPrefix:"ADMIN_BOOTSTRAP_"`
}

// BootstrapConfig describes the admin account created on first start.
// Empty username disables bootstrap.
type BootstrapConfig struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	Role     string `env:"ROLE" envDefault:"super_admin"`
}

func (b BootstrapConfig) Enabled() bool {
	return strings.TrimSpace(b.Username) != ""
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.GinMode = strings.ToLower(strings.TrimSpace(cfg.GinMode))
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Printf("config_warning reason=default_jwt_secret app_env=%s", cfg.AppEnv)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c *Config) HTTPAddress() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

// RouterMode is the gin mode to run with. Production-like environments
// always run in release mode.
func (c *Config) RouterMode() string {
	if c.IsProduction() {
		return "release"
	}
	return c.GinMode
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of: debug, release, test")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if len(cfg.JWTSecret) < minJWTSecretLen {
			return fmt.Errorf("in prod/release JWT_SECRET must be at least %d bytes long", minJWTSecretLen)
		}
	}

	if cfg.Bootstrap.Enabled() {
		if len(cfg.Bootstrap.Password) < 8 {
			return fmt.Errorf("ADMIN_BOOTSTRAP_PASSWORD must be at least 8 characters")
		}
		role := strings.TrimSpace(cfg.Bootstrap.Role)
		if role != "admin" && role != "super_admin" {
			return fmt.Errorf("ADMIN_BOOTSTRAP_ROLE must be one of: admin, super_admin")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
