package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Prefix is the environment variable prefix, e.g. ADMIN_API_BASE_URL.
const Prefix = "ADMIN"

// Config holds the settings shared by the CLI, the console and the MCP
// server.
type Config struct {
	APIBaseURL  string      `envconfig:"API_BASE_URL" default:"http://localhost:5000/api"`
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Transport and store timing
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`
	SuccessTTL     time.Duration `envconfig:"SUCCESS_TTL" default:"3s"`

	// Effect worker pool
	Workers     int `envconfig:"WORKERS" default:"8"`
	QueueSize   int `envconfig:"QUEUE_SIZE" default:"128"`
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"3"`

	// StateHome holds session.db; empty means ~/.futuresoulmate-admin.
	StateHome string `envconfig:"STATE_HOME" default:""`

	ConsoleAddr string `envconfig:"CONSOLE_ADDR" default:":8090"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

// New creates a Config from ADMIN_* environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Str("environment", string(cfg.Environment)).
		Dur("http_timeout", cfg.HTTPTimeout).
		Dur("request_timeout", cfg.RequestTimeout).
		Int("workers", cfg.Workers).
		Int("max_attempts", cfg.MaxAttempts).
		Str("state_home_set", func() string {
			if cfg.StateHome != "" {
				return "true"
			}
			return "false"
		}()).
		Str("console_addr", cfg.ConsoleAddr).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		APIBaseURL:     "http://127.0.0.1:5000/api",
		Environment:    EnvTesting,
		HTTPTimeout:    5 * time.Second,
		RequestTimeout: 5 * time.Second,
		SuccessTTL:     3 * time.Second,
		Workers:        4,
		QueueSize:      32,
		MaxAttempts:    1,
		ConsoleAddr:    "127.0.0.1:0",
		LogLevel:       "debug",
	}
}

// Validate rejects settings the store or client cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid API_BASE_URL %q: want an absolute http(s) URL", c.APIBaseURL)
	}
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	for name, d := range map[string]time.Duration{
		"HTTP_TIMEOUT":    c.HTTPTimeout,
		"REQUEST_TIMEOUT": c.RequestTimeout,
		"SUCCESS_TTL":     c.SuccessTTL,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.Workers < 1 || c.QueueSize < 1 || c.MaxAttempts < 1 {
		return fmt.Errorf("WORKERS, QUEUE_SIZE and MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// BaseURL is APIBaseURL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.APIBaseURL, "/")
}
