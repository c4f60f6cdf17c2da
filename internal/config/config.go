package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	TTS       TTSConfig       `mapstructure:"tts"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// SchedulerConfig tunes the spaced-repetition algorithm. Zero values fall
// back to the algorithm defaults (300 s base, factor 2, threshold 20).
type SchedulerConfig struct {
	BaseIntervalSeconds int `mapstructure:"base_interval_seconds" validate:"omitempty,gt=0"`
	GrowthFactor        int `mapstructure:"growth_factor"         validate:"omitempty,gt=1"`
	MasteryThreshold    int `mapstructure:"mastery_threshold"     validate:"omitempty,gt=0"`
}

// TTSConfig configures the external speech-synthesis proxy. An empty
// endpoint disables the audio route.
type TTSConfig struct {
	Endpoint            string `mapstructure:"endpoint"              validate:"omitempty,url"`
	MaxAttempts         int    `mapstructure:"max_attempts"          validate:"omitempty,gt=0"`
	RetryBackoffSeconds int    `mapstructure:"retry_backoff_seconds" validate:"omitempty,gte=0"`
}
