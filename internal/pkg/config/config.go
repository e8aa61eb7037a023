package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/builderportfolio/portfolio-system/pkg/logger"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	// StrictRoles rejects registration role selectors other than 1 and 2.
	StrictRoles bool `env:"STRICT_ROLES, default=false"`

	// MetricsFile receives a Prometheus text dump on exit when set.
	MetricsFile string `env:"METRICS_FILE"`
}

// Load reads configuration from PORTFOLIO_* environment variables.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l, which still sees the prefixed names.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, l),
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s%s: %w", EnvPrefix, "LOG_LEVEL", err)
	}
	return nil
}
