package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config aggregates every tunable of the service. Values come from the
// environment (optionally via a .env file loaded in main).
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Chat widget timing and lifecycle.
	ResponseDelay   time.Duration `env:"CHAT_RESPONSE_DELAY" envDefault:"600ms"`
	OpeningDelay    time.Duration `env:"CHAT_OPENING_DELAY" envDefault:"500ms"`
	SessionTTL      time.Duration `env:"CHAT_SESSION_TTL" envDefault:"30m"`
	JanitorSchedule string        `env:"CHAT_JANITOR_SCHEDULE" envDefault:"*/5 * * * *"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address. PORT may be a bare port or a full
// "host:port" value.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
