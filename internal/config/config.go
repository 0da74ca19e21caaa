package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          int    `env:"PORT" envDefault:"3009"`
	PortfolioFile string `env:"PORTFOLIO_FILE" envDefault:"portfolio.json"`
	Env           string `env:"STOCKSIM_ENV"`
}

// Load reads configuration from environment variables. Every field has a
// default, so an empty environment yields a runnable config.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
