// Package config loads service configuration from an optional YAML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"tmj-platform/internal/platform/logging"
)

const (
	envPrefix = "TMJ_"

	DriverNone     = "none"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Log      logging.Config `koanf:"log"`
	Database DatabaseConfig `koanf:"database"`
	Telegram TelegramConfig `koanf:"telegram"`
	Report   ReportConfig   `koanf:"report"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	URL             string        `koanf:"url"`
	SQLitePath      string        `koanf:"sqlite_path"`
	MigrationsPath  string        `koanf:"migrations_path"`
	ConnectAttempts int           `koanf:"connect_attempts"`
	ConnectDelay    time.Duration `koanf:"connect_delay"`
}

type TelegramConfig struct {
	Token   string `koanf:"token"`
	ChatID  int64  `koanf:"chat_id"`
	BaseURL string `koanf:"base_url"`
}

type ReportConfig struct {
	FontPaths []string `koanf:"font_paths"`
}

// Load reads configuration with precedence env > YAML file > defaults.
// An empty path skips the file. Environment variables map
// TMJ_SECTION_FIELD_NAME to section.field_name.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyLegacyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps TMJ_SERVER_MAX_BODY_BYTES to server.max_body_bytes.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// applyLegacyEnv honours the variable names used by earlier deployments when
// the prefixed equivalents are absent.
func applyLegacyEnv(cfg *Config) {
	if cfg.Database.URL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			cfg.Database.URL = v
			if cfg.Database.Driver == "" {
				cfg.Database.Driver = DriverPostgres
			}
		}
	}
	if cfg.Server.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			cfg.Server.Port = p
		}
	}
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.Telegram.ChatID == 0 {
		if id, err := strconv.ParseInt(os.Getenv("DOCTOR_CHAT_ID"), 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 64 << 10
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverNone
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "tmj.db"
	}
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "migrations"
	}
	if cfg.Database.ConnectAttempts == 0 {
		cfg.Database.ConnectAttempts = 10
	}
	if cfg.Database.ConnectDelay == 0 {
		cfg.Database.ConnectDelay = 2 * time.Second
	}

	if cfg.Telegram.BaseURL == "" {
		cfg.Telegram.BaseURL = "https://api.telegram.org"
	}

	if len(cfg.Report.FontPaths) == 0 {
		cfg.Report.FontPaths = []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		}
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must not be negative")
	}

	switch c.Database.Driver {
	case DriverNone, DriverSQLite:
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("database.url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	return nil
}
