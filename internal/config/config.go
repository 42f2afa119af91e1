package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/medassist/medassist-api/internal/repository/ossstore"
	"github.com/medassist/medassist-api/internal/service/article"
	"github.com/medassist/medassist-api/internal/service/intent"
	"github.com/medassist/medassist-api/internal/service/search"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Intent    intent.Config   `mapstructure:"intent"`
	Search    search.Config   `mapstructure:"search"`
	OSS       ossstore.Config `mapstructure:"oss"`
	Articles  article.Config  `mapstructure:"articles"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port" validate:"required,gt=0,lte=65535"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`
}

type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"required,gt=0"`
	Burst int     `mapstructure:"burst" validate:"required,gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	bindEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Running on environment variables alone is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func bindEnv() {
	viper.BindEnv("llm.api_key", "FIREWORKS_API_KEY")
	viper.BindEnv("search.api_key", "EXA_API_KEY")
	viper.BindEnv("oss.region", "OSS_REGION")
	viper.BindEnv("oss.access_key_id", "OSS_ACCESS_KEY_ID")
	viper.BindEnv("oss.access_key_secret", "OSS_ACCESS_KEY_SECRET")
	viper.BindEnv("oss.bucket", "OSS_BUCKET")
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.request_timeout", "600s")
	viper.SetDefault("llm.base_url", "https://api.fireworks.ai/inference/v1")
	viper.SetDefault("llm.model", "accounts/fireworks/models/deepseek-v3-0324")
	viper.SetDefault("llm.timeout", "600s")
	viper.SetDefault("intent.timeout", "60s")
	viper.SetDefault("search.base_url", "https://api.exa.ai")
	viper.SetDefault("search.num_results", 25)
	viper.SetDefault("search.timeout", "60s")
	viper.SetDefault("articles.cache_ttl", "5m")
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("log.level", "info")
}
