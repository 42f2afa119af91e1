package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.fireworks.ai/inference/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "accounts/fireworks/models/deepseek-v3-0324", cfg.LLM.Model)
	assert.Equal(t, 25, cfg.Search.NumResults)
	assert.Equal(t, float64(50), cfg.RateLimit.RPS)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("FIREWORKS_API_KEY", "fw-test-key")
	t.Setenv("EXA_API_KEY", "exa-test-key")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "fw-test-key", cfg.LLM.APIKey)
	assert.Equal(t, "exa-test-key", cfg.Search.APIKey)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_PORT", "0")
	viper.BindEnv("server.port", "SERVER_PORT")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
