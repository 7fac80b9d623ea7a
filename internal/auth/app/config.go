package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer      string        // Issuer claim for tokens (default: doorman)
	JWTSecret   string        // HS256 key; a random one is generated when empty
	TokenTTL    time.Duration // Access token lifetime (default: 1h)
	BcryptCost  int           // bcrypt work factor (default: 10)
	DefaultRole string        // Role assigned at registration (default: member)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database path (default: ./auth.db)
	DatabaseURL    string // Postgres DSN, required for the postgres driver

	CORSOrigins []string // Allowed browser origins; empty disables CORS

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// fileConfig mirrors the optional YAML file named by AUTH_CONFIG_FILE.
type fileConfig struct {
	Issuer      string `yaml:"issuer"`
	JWTSecret   string `yaml:"jwt_secret"`
	TokenTTL    string `yaml:"token_ttl"`
	BcryptCost  int    `yaml:"bcrypt_cost"`
	DefaultRole string `yaml:"default_role"`

	Database struct {
		Driver string `yaml:"driver"`
		File   string `yaml:"file"`
		URL    string `yaml:"url"`
	} `yaml:"database"`

	CORSOrigins []string `yaml:"cors_origins"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Env                 string `yaml:"env"`
	Port                int    `yaml:"port"`
	ShutdownGracePeriod string `yaml:"shutdown_grace_period"`
}

func defaultConfig() Config {
	return Config{
		Issuer:              "doorman",
		TokenTTL:            jwtx.DefaultAccessTokenTTL,
		BcryptCost:          cryptox.DefaultCost,
		DefaultRole:         domain.RoleMember,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        "auth.db",
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig builds the configuration in layers: defaults, then the YAML
// file named by AUTH_CONFIG_FILE, then environment variables. A .env file in
// the working directory is loaded first but never overrides variables that
// are already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("AUTH_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var f fileConfig
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&c.Issuer, f.Issuer)
	setString(&c.JWTSecret, f.JWTSecret)
	setString(&c.DefaultRole, f.DefaultRole)
	setString(&c.DatabaseDriver, f.Database.Driver)
	setString(&c.DatabaseFile, f.Database.File)
	setString(&c.DatabaseURL, f.Database.URL)
	setString(&c.Env, f.Env)
	setString(&c.LogLevel, f.Log.Level)
	setString(&c.LogFormat, f.Log.Format)

	if f.BcryptCost != 0 {
		c.BcryptCost = f.BcryptCost
	}
	if f.Port != 0 {
		c.Port = f.Port
	}
	if len(f.CORSOrigins) > 0 {
		c.CORSOrigins = f.CORSOrigins
	}
	if f.TokenTTL != "" {
		d, err := time.ParseDuration(f.TokenTTL)
		if err != nil {
			return fmt.Errorf("config file token_ttl: %w", err)
		}
		c.TokenTTL = d
	}
	if f.ShutdownGracePeriod != "" {
		d, err := time.ParseDuration(f.ShutdownGracePeriod)
		if err != nil {
			return fmt.Errorf("config file shutdown_grace_period: %w", err)
		}
		c.ShutdownGracePeriod = d
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Issuer = getEnvOrDefault("AUTH_ISSUER", c.Issuer)
	c.JWTSecret = getEnvOrDefault("AUTH_JWT_SECRET", c.JWTSecret)
	c.TokenTTL = getEnvDurationOrDefault("AUTH_TOKEN_TTL", c.TokenTTL)
	c.BcryptCost = getEnvIntOrDefault("AUTH_BCRYPT_COST", c.BcryptCost)
	c.DefaultRole = getEnvOrDefault("AUTH_DEFAULT_ROLE", c.DefaultRole)
	c.DatabaseDriver = getEnvOrDefault("AUTH_DATABASE_DRIVER", c.DatabaseDriver)
	c.DatabaseFile = getEnvOrDefault("AUTH_DATABASE_FILE", c.DatabaseFile)
	c.DatabaseURL = getEnvOrDefault("AUTH_DATABASE_URL", c.DatabaseURL)
	c.CORSOrigins = getEnvListOrDefault("AUTH_CORS_ORIGINS", c.CORSOrigins)
	c.Env = getEnvOrDefault("ENV", c.Env)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)
	c.Port = getEnvIntOrDefault("PORT", c.Port)
	c.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", c.ShutdownGracePeriod)
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("config: AUTH_DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: AUTH_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown database driver %q", c.DatabaseDriver)
	}

	if c.TokenTTL <= 0 {
		return errors.New("config: AUTH_TOKEN_TTL must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DefaultRole) == "" {
		return errors.New("config: AUTH_DEFAULT_ROLE must not be empty")
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated variable, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
