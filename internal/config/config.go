package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultListingTimeout = 5 * time.Second
)

// DBConfig holds the connection settings shared by both services.
type DBConfig struct {
	Driver      string `env:"DRIVER"       envDefault:"postgres"`
	Host        string `env:"HOST"         envDefault:"localhost"`
	Port        int    `env:"PORT"         envDefault:"5432"`
	User        string `env:"USER"         envDefault:"postgres"`
	Password    string `env:"PASSWORD"     envDefault:"password"`
	Name        string `env:"NAME"         envDefault:"jobboard"`
	SSLMode     string `env:"SSL_MODE"     envDefault:"disable"`
	SQLitePath  string `env:"SQLITE_PATH"  envDefault:"jobboard.sqlite"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

// DSN builds the driver specific data source name.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// HTTPConfig contains settings common to both HTTP servers.
type HTTPConfig struct {
	GinMode      string   `env:"GIN_MODE"           envDefault:"release"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// ListingConfig configures the job listing service.
type ListingConfig struct {
	Addr     string `env:"LISTING_HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL"         envDefault:"info"`
	HTTP     HTTPConfig
	DB       DBConfig `envPrefix:"DB_"`
}

// ListingClientConfig controls how the application service reaches the listing service.
type ListingClientConfig struct {
	BaseURL string        `env:"JOB_LISTING_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"JOB_LISTING_TIMEOUT"  envDefault:"5s"`
	// UnavailableAsNotFound reports an unreachable listing service as a missing job (404)
	// instead of 503.
	UnavailableAsNotFound bool `env:"JOB_LISTING_UNAVAILABLE_AS_NOT_FOUND" envDefault:"true"`
}

// ApplyConfig configures the job application service.
type ApplyConfig struct {
	Addr     string `env:"APPLY_HTTP_ADDR" envDefault:":8081"`
	LogLevel string `env:"LOG_LEVEL"       envDefault:"info"`
	HTTP     HTTPConfig
	DB       DBConfig `envPrefix:"DB_"`
	Listing  ListingClientConfig
}

// Sanitize applies guardrails to values loaded from the environment.
func (c *ListingClientConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultListingTimeout
	}
}

func (c *DBConfig) Sanitize() {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver == "" {
		c.Driver = DriverPostgres
	}
}

// LoadListing reads the listing service configuration.
func LoadListing() (ListingConfig, error) {
	var cfg ListingConfig
	if err := load(&cfg); err != nil {
		return cfg, err
	}
	cfg.DB.Sanitize()
	return cfg, validateDriver(cfg.DB.Driver)
}

// LoadApply reads the application service configuration.
func LoadApply() (ApplyConfig, error) {
	var cfg ApplyConfig
	if err := load(&cfg); err != nil {
		return cfg, err
	}
	cfg.DB.Sanitize()
	cfg.Listing.Sanitize()
	if cfg.Listing.BaseURL == "" {
		return cfg, errors.New("JOB_LISTING_BASE_URL must not be empty")
	}
	return cfg, validateDriver(cfg.DB.Driver)
}

func load(cfg any) error {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func validateDriver(driver string) error {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (valid options: postgres, sqlite)", driver)
	}
}

// NewLogger builds the JSON logger used by both services and installs it as default.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
