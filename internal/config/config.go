package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address          string  `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	Database         string  `env:"DATABASE_URI"`
	StoragePath      string  `env:"STORAGE_PATH"`
	LogLvl           string  `env:"LOG_LVL"            envDefault:"info"`
	ReferralBonus    int64   `env:"REFERRAL_BONUS"     envDefault:"50"`
	ReferralLinkBase string  `env:"REFERRAL_LINK_BASE" envDefault:"https://t.me/your_bot_username/app"`
	CatalogPath      string  `env:"CATALOG_PATH"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS"     envDefault:"0"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST"   envDefault:"20"`
}

// New reads an optional .env file, then the environment, then command-line flags.
// Flags win over the environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, empty for in-memory storage")
	flag.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "JSON snapshot file for in-memory storage")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Int64Var(&cfg.ReferralBonus, "b", cfg.ReferralBonus, "points credited to a referrer")
	flag.StringVar(&cfg.ReferralLinkBase, "link", cfg.ReferralLinkBase, "base URL of referral links")
	flag.StringVar(&cfg.CatalogPath, "c", cfg.CatalogPath, "YAML catalog file, empty for the builtin catalog")
	flag.Float64Var(&cfg.RateLimitRPS, "rps", cfg.RateLimitRPS, "requests per second per client, 0 disables")
	flag.IntVar(&cfg.RateLimitBurst, "burst", cfg.RateLimitBurst, "rate limit burst per client")
	flag.Parse()

	if cfg.ReferralBonus <= 0 {
		return nil, fmt.Errorf("referral bonus must be positive, got %d", cfg.ReferralBonus)
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		return nil, fmt.Errorf("rate limit must not be negative")
	}

	return cfg, nil
}
