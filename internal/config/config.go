package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	envPrefix     = "ORDERFORM_"
	configFileEnv = "ORDERFORM_CONFIG_FILE"

	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Session  SessionConfig  `koanf:"session"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Retry    RetryConfig    `koanf:"retry"`
	Auth     AuthConfig     `koanf:"auth"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required,min=1"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development test production"`
}

// IsProduction reports whether error pages must hide internals.
func (p Primary) IsProduction() bool {
	return p.Env == EnvProduction
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type SessionConfig struct {
	Backend    string        `koanf:"backend" validate:"required,oneof=memory redis postgres"`
	CookieName string        `koanf:"cookie_name" validate:"required"`
	TTL        time.Duration `koanf:"ttl" validate:"required"`
	Secure     bool          `koanf:"secure"`
}

// DatabaseConfig is only checked when the postgres session backend is
// selected; see Config.Validate.
type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	URL string `koanf:"url" validate:"required"`
}

type UpstreamConfig struct {
	CatalogueBaseURL    string        `koanf:"catalogue_base_url" validate:"required,url"`
	OrganisationBaseURL string        `koanf:"organisation_base_url" validate:"required,url"`
	OrderBaseURL        string        `koanf:"order_base_url" validate:"required,url"`
	Timeout             time.Duration `koanf:"timeout" validate:"required"`
}

// RetryConfig applies to idempotent upstream reads only. MaxAttempts of 1
// disables retrying.
type RetryConfig struct {
	BaseDelay   time.Duration `koanf:"base_delay"`
	MaxAttempts int           `koanf:"max_attempts" validate:"min=1"`
}

type AuthConfig struct {
	LoginURL string `koanf:"login_url" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 EnvDevelopment,
		"server.port":                 "3006",
		"server.read_timeout":         "15s",
		"server.write_timeout":        "30s",
		"server.idle_timeout":         "60s",
		"server.request_timeout":      "30s",
		"session.backend":             SessionBackendMemory,
		"session.cookie_name":         "order-form.sid",
		"session.ttl":                 "1h",
		"session.secure":              false,
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"upstream.timeout":            "10s",
		"retry.base_delay":            "100ms",
		"retry.max_attempts":          1,
		"auth.login_url":              "/login",
		"logger.level":                "info",
		"logger.format":               "text",
		"worker.interval":             "1m",
		"worker.batch_size":           500,
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		if s == configFileEnv {
			return ""
		}
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks the sections every deployment needs, plus the section that
// belongs to the chosen session backend.
func (c *Config) Validate() error {
	validate := validator.New()

	sections := []interface{}{
		c.Primary, c.Server, c.Session, c.Upstream, c.Retry, c.Auth, c.Logger, c.Worker,
	}
	switch c.Session.Backend {
	case SessionBackendPostgres:
		sections = append(sections, c.Database)
	case SessionBackendRedis:
		sections = append(sections, c.Redis)
	}

	for _, s := range sections {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
