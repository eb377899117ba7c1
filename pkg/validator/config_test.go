package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("FORMGUARD_MAX_DEPTH", "12")
	t.Setenv("FORMGUARD_STRICT_KINDS", "true")
	t.Setenv("FORMGUARD_TAG_NAME", "validate")
	t.Setenv("FORMGUARD_NAME_TAG", "form")
	t.Setenv("FORMGUARD_SCHEMA_DIR", "schemas")
	t.Setenv("FORMGUARD_LOG_LEVEL", "debug")
	t.Setenv("FORMGUARD_LOG_FORMAT", "text")
	t.Setenv("FORMGUARD_METRICS_PREFIX", "forms")
	t.Setenv("FORMGUARD_METRICS_ENABLED", "true")

	cfg, err := validator.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, validator.Config{
		MaxDepth:       12,
		StrictKinds:    true,
		TagName:        "validate",
		NameTag:        "form",
		SchemaDir:      "schemas",
		LogLevel:       "debug",
		LogFormat:      "text",
		MetricsPrefix:  "forms",
		MetricsEnabled: true,
	}, cfg)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*validator.Config)
	}{
		{"zero depth", func(c *validator.Config) { c.MaxDepth = 0 }},
		{"empty tag", func(c *validator.Config) { c.TagName = " " }},
		{"bad level", func(c *validator.Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *validator.Config) { c.LogFormat = "xml" }},
		{"empty metrics prefix", func(c *validator.Config) { c.MetricsEnabled = true; c.MetricsPrefix = "" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validator.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), validator.ErrInvalidConfig)
		})
	}
}
