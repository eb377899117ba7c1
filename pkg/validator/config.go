package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Config holds environment driven settings of a validator setup.
type Config struct {
	MaxDepth       int    `env:"FORMGUARD_MAX_DEPTH" envDefault:"100"`
	StrictKinds    bool   `env:"FORMGUARD_STRICT_KINDS" envDefault:"false"`
	TagName        string `env:"FORMGUARD_TAG_NAME" envDefault:"check"`
	NameTag        string `env:"FORMGUARD_NAME_TAG" envDefault:"json"`
	SchemaDir      string `env:"FORMGUARD_SCHEMA_DIR"`
	LogLevel       string `env:"FORMGUARD_LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"FORMGUARD_LOG_FORMAT" envDefault:"json"`
	MetricsPrefix  string `env:"FORMGUARD_METRICS_PREFIX" envDefault:"formguard"`
	MetricsEnabled bool   `env:"FORMGUARD_METRICS_ENABLED" envDefault:"false"`
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		TagName:       "check",
		NameTag:       "json",
		LogLevel:      "warn",
		LogFormat:     "json",
		MetricsPrefix: "formguard",
	}
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth))
	}
	if strings.TrimSpace(c.TagName) == "" {
		errs = append(errs, fmt.Errorf("%w: tag name is empty", ErrInvalidConfig))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if c.MetricsEnabled && strings.TrimSpace(c.MetricsPrefix) == "" {
		errs = append(errs, fmt.Errorf("%w: metrics prefix is empty", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
