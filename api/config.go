package api

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "FARM_API"

// Config contains server configuration. Each field can be set from the
// environment, e.g. FARM_API_PORT or FARM_API_RATE_LIMIT_BURST.
type Config struct {
	Host         string
	Port         int
	NodeURI      string        `split_words:"true"`
	GRPCAddr     string        `envconfig:"GRPC_ADDR"`
	ReadTimeout  time.Duration `split_words:"true"`
	WriteTimeout time.Duration `split_words:"true"`

	RateLimitRPS     float64  `split_words:"true"`
	RateLimitBurst   int      `split_words:"true"`
	DisableRateLimit bool     `split_words:"true"`
	AllowedOrigins   []string `split_words:"true"`

	PollInterval   time.Duration `split_words:"true"`
	MaxWSConnPerIP int           `split_words:"true"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Host:           "0.0.0.0",
		Port:           8080,
		NodeURI:        "tcp://localhost:26657",
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		AllowedOrigins: []string{"*"},
		PollInterval:   time.Second,
		MaxWSConnPerIP: 10,
	}
}

// LoadConfig returns the defaults overridden by FARM_API_* variables
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.NodeURI == "" {
		return fmt.Errorf("node URI is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if !c.DisableRateLimit && (c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0) {
		return fmt.Errorf("rate limit must be positive, got %v/s burst %d", c.RateLimitRPS, c.RateLimitBurst)
	}
	if c.MaxWSConnPerIP <= 0 {
		return fmt.Errorf("max websocket connections per IP must be positive")
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
