package config

import (
	"os"
	"strconv"

	"govalue/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Sampling  SamplingConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// SamplingConfig holds Monte Carlo sampling settings
type SamplingConfig struct {
	// DefaultSamples is used when a request omits sample_count
	DefaultSamples int
	// MaxSamples caps request-supplied sample counts so a hosting
	// layer can bound latency
	MaxSamples int
	// Seed, when nonzero, makes every comparison deterministic.
	// Primarily for testing and replay.
	Seed int64
}

// ProfilingConfig holds the optional pprof/ops listener settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Sampling: SamplingConfig{
			DefaultSamples: getEnvIntOrDefault("DEFAULT_SAMPLES", 100000),
			MaxSamples:     getEnvIntOrDefault("MAX_SAMPLES", 1000000),
			Seed:           getEnvInt64OrDefault("RANDOM_SEED", 0),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PROFILING_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PROFILING_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(c *Config) error {
	if c.Sampling.DefaultSamples <= 0 {
		return errors.ConfigInvalid("DEFAULT_SAMPLES must be > 0")
	}
	if c.Sampling.MaxSamples < c.Sampling.DefaultSamples {
		return errors.ConfigInvalid("MAX_SAMPLES must be >= DEFAULT_SAMPLES")
	}
	if c.Server.Port == "" {
		return errors.ConfigInvalid("SERVER_PORT must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
