// Package config reads process configuration from BARCUT_* environment
// variables.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/piwi3910/BarCut/internal/logging"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/piwi3910/BarCut/internal/project"
)

// Config holds environment overrides. Planning fields are pointers so an
// unset variable leaves the saved preference alone.
type Config struct {
	StockLength *int `env:"BARCUT_STOCK_LENGTH"`
	Kerf        *int `env:"BARCUT_KERF"`
	MinOffcut   *int `env:"BARCUT_MIN_OFFCUT"`

	LogLevel  string `env:"BARCUT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BARCUT_LOG_FORMAT" envDefault:"pretty"`

	// Directory holding config.json and stock.json
	ConfigDir string `env:"BARCUT_CONFIG_DIR"`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse barcut config")
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = project.DefaultConfigDir()
	}
	if err := cfg.validate(); err != nil {
		return cfg, eris.Wrap(err, "invalid barcut config")
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.StockLength != nil && *cfg.StockLength <= 0 {
		return eris.Errorf("stock length must be positive, got %d", *cfg.StockLength)
	}
	if cfg.Kerf != nil && *cfg.Kerf < 0 {
		return eris.Errorf("kerf cannot be negative, got %d", *cfg.Kerf)
	}
	if cfg.MinOffcut != nil && *cfg.MinOffcut < 0 {
		return eris.Errorf("minimum offcut cannot be negative, got %d", *cfg.MinOffcut)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return eris.Wrapf(err, "invalid log level: %s", cfg.LogLevel)
	}
	if logging.ParseFormat(cfg.LogFormat) == logging.FormatUndefined {
		return eris.Errorf("invalid log format: %s (must be 'json' or 'pretty')", cfg.LogFormat)
	}
	return nil
}

// ApplyToSettings overwrites the settings that are set in the environment.
func (cfg Config) ApplyToSettings(s *model.PlanSettings) {
	if cfg.StockLength != nil {
		s.StockLength = *cfg.StockLength
	}
	if cfg.Kerf != nil {
		s.Kerf = *cfg.Kerf
	}
	if cfg.MinOffcut != nil {
		s.MinOffcut = *cfg.MinOffcut
	}
}

// Logger builds the process logger from the configured level and format.
func (cfg Config) Logger() zerolog.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat)
}
