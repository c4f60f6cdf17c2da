package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config
// file. Environment variables (prefix LEXI, e.g. LEXI_SERVER_PORT) take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	// Registering the key is what lets AutomaticEnv surface it during
	// Unmarshal; validation still rejects an empty URL.
	v.SetDefault("database.url", "")
	v.SetDefault("tts.endpoint", "")
	v.SetDefault("scheduler.base_interval_seconds", 300)
	v.SetDefault("scheduler.growth_factor", 2)
	v.SetDefault("scheduler.mastery_threshold", 20)
	v.SetDefault("tts.max_attempts", 3)
	v.SetDefault("tts.retry_backoff_seconds", 2)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; env vars and defaults cover everything.
	}

	// Environment variables: LEXI_SERVER_PORT, LEXI_DATABASE_URL, ...
	v.SetEnvPrefix("LEXI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
